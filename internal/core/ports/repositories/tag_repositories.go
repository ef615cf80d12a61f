package repositories

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// TransactionTagReader defines read operations for transaction tag data.
type TransactionTagReader interface {
	// ListTags retrieves the full transaction position to tag list map.
	ListTags(ctx context.Context) (domain.TransactionTags, error)
}

// TransactionTagWriter defines write operations for transaction tag data.
type TransactionTagWriter interface {
	// ReplaceTags atomically replaces the whole tag table.
	ReplaceTags(ctx context.Context, tags domain.TransactionTags) error
}

// TransactionTagRepositoryFacade combines all tag-related repository interfaces.
type TransactionTagRepositoryFacade interface {
	TransactionTagReader
	TransactionTagWriter
}
