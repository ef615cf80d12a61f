package services

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/dto"
)

// ReimbursementReaderSvc defines read operations for reimbursement data.
type ReimbursementReaderSvc interface {
	// ListReimbursements retrieves every reimbursement, newest date first.
	ListReimbursements(ctx context.Context) ([]domain.Reimbursement, error)
}

// ReimbursementWriterSvc defines write operations for reimbursement data.
type ReimbursementWriterSvc interface {
	// CreateReimbursement validates and persists a new reimbursement.
	CreateReimbursement(ctx context.Context, req dto.CreateReimbursementRequest) (*domain.Reimbursement, error)
}

// ReimbursementSvcFacade combines all reimbursement-related service interfaces.
type ReimbursementSvcFacade interface {
	ReimbursementReaderSvc
	ReimbursementWriterSvc
}
