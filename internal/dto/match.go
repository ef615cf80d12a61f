package dto

import "github.com/crestbuild/ops_backend/internal/core/domain"

// SetMatchRequest asks to associate an uploaded file with a transaction
// position. TransactionIndex is a pointer so a missing index is rejected
// rather than read as zero; -1 clears the file's match. Force bypasses
// conflict detection.
type SetMatchRequest struct {
	Filename         string `json:"filename" binding:"required"`
	TransactionIndex *int   `json:"transaction_index" binding:"required"`
	Force            bool   `json:"force"`
}

// MatchListResponse is the envelope returned by the match list endpoint.
type MatchListResponse struct {
	Success bool                 `json:"success"`
	Matches domain.ManualMatches `json:"matches"`
}

// MatchMutationResponse is the envelope returned after setting or clearing a match.
type MatchMutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
