package dto

import (
	"encoding/json"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// CreateReimbursementRequest defines the data needed to record a
// reimbursement. Amount is a json.Number so the console may send either a
// quoted or bare number.
type CreateReimbursementRequest struct {
	Vendor      string      `json:"vendor" binding:"required"`
	Amount      json.Number `json:"amount" binding:"required"`
	Date        string      `json:"date" binding:"required"`
	Description *string     `json:"description"`
}

// ReimbursementListResponse is the envelope returned by the reimbursement list endpoint.
type ReimbursementListResponse struct {
	Success        bool                   `json:"success"`
	Reimbursements []domain.Reimbursement `json:"reimbursements"`
}

// CreateReimbursementResponse is the envelope returned after recording a reimbursement.
type CreateReimbursementResponse struct {
	Success       bool                 `json:"success"`
	Reimbursement domain.Reimbursement `json:"reimbursement"`
	Message       string               `json:"message"`
}
