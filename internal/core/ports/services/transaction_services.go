package services

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for imported transactions.
type TransactionReaderSvc interface {
	// ListTransactions retrieves the imported set in position order with
	// the cardholder resolved on each transaction.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionImporterSvc defines the statement import operation.
type TransactionImporterSvc interface {
	// ImportCSV parses raw statement text and replaces the imported set.
	// Existing manual matches and tags are cleared because they key on
	// positions in the replaced set; the summary reports how many.
	ImportCSV(ctx context.Context, csvData string) (*dto.ImportSummary, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionImporterSvc
}
