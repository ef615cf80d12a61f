package dto

import "github.com/crestbuild/ops_backend/internal/core/domain"

// TransactionListResponse is the envelope returned by the transaction list
// endpoint. Transactions carry the read-time cardholder decoration.
type TransactionListResponse struct {
	Success      bool                 `json:"success"`
	Transactions []domain.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// ImportCSVRequest carries the raw statement text to ingest.
type ImportCSVRequest struct {
	CSVData string `json:"csv_data" binding:"required"`
}

// ImportSummary reports what an import did: how many transactions the new
// set holds, and how many stale matches and tag entries were cleared along
// with the replaced set.
type ImportSummary struct {
	TransactionCount int
	ClearedMatches   int
	ClearedTags      int
}

// ImportResponse is the envelope returned after a statement import.
type ImportResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	TransactionsCount int    `json:"transactions_count"`
	ClearedMatches    int    `json:"cleared_matches"`
	ClearedTags       int    `json:"cleared_tags"`
}
