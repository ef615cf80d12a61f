package repositories

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// TransactionReader defines read operations for imported transactions.
type TransactionReader interface {
	// ListTransactions retrieves the imported set in position order. An
	// empty table yields an empty slice and a nil error; failures are
	// surfaced as errors, never as an empty result.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for imported transactions.
type TransactionWriter interface {
	// ReplaceTransactions atomically replaces the whole imported set.
	// Positions are assigned from slice order.
	ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
