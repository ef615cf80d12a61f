package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// TransactionConflictError reports that a transaction is already matched to
// another file. It carries enough detail for the caller to present the
// conflict and decide on a force override.
type TransactionConflictError struct {
	ConflictFile     string // file currently holding the transaction
	TransactionIndex int
	Vendor           string
	Amount           string
}

func (e *TransactionConflictError) Error() string {
	return fmt.Sprintf("transaction %d (%s - $%s) is already assigned to file %q", e.TransactionIndex, e.Vendor, e.Amount, e.ConflictFile)
}

func (e *TransactionConflictError) Is(target error) bool {
	return target == ErrDuplicate
}

// FileConflictError reports that a file is already matched to a different
// transaction than the one requested.
type FileConflictError struct {
	Filename         string
	TransactionIndex int // transaction the file currently holds
	Vendor           string
	Amount           string
}

func (e *FileConflictError) Error() string {
	return fmt.Sprintf("file %q is already assigned to transaction %d (%s - $%s)", e.Filename, e.TransactionIndex, e.Vendor, e.Amount)
}

func (e *FileConflictError) Is(target error) bool {
	return target == ErrDuplicate
}
