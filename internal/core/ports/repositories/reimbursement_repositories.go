package repositories

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// ReimbursementReader defines read operations for reimbursement data.
type ReimbursementReader interface {
	// ListReimbursements retrieves every reimbursement, newest date first.
	ListReimbursements(ctx context.Context) ([]domain.Reimbursement, error)
}

// ReimbursementWriter defines write operations for reimbursement data.
type ReimbursementWriter interface {
	// ReplaceReimbursements atomically replaces the whole reimbursement table.
	ReplaceReimbursements(ctx context.Context, reimbursements []domain.Reimbursement) error
}

// ReimbursementRepositoryFacade combines all reimbursement-related repository interfaces.
type ReimbursementRepositoryFacade interface {
	ReimbursementReader
	ReimbursementWriter
}
