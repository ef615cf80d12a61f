package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/dto"
)

// ReimbursementService manages the reimbursement table.
type ReimbursementService struct {
	reimbursementRepo portsrepo.ReimbursementRepositoryFacade
}

func NewReimbursementService(reimbursementRepo portsrepo.ReimbursementRepositoryFacade) *ReimbursementService {
	return &ReimbursementService{reimbursementRepo: reimbursementRepo}
}

// CreateReimbursement validates the candidate, assigns the next identifier,
// and rewrites the reimbursement table with the new record appended.
func (s *ReimbursementService) CreateReimbursement(ctx context.Context, req dto.CreateReimbursementRequest) (*domain.Reimbursement, error) {
	vendor := strings.TrimSpace(req.Vendor)
	date := strings.TrimSpace(req.Date)
	if vendor == "" || date == "" {
		return nil, fmt.Errorf("%w: vendor, amount, and date are required", apperrors.ErrValidation)
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", apperrors.ErrValidation)
	}

	reimbursements, err := s.reimbursementRepo.ListReimbursements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursements in service: %w", err)
	}

	now := time.Now()
	reimbursement := domain.Reimbursement{
		ID:          int64(len(reimbursements) + 1),
		Vendor:      vendor,
		Amount:      amount,
		Date:        date,
		Description: optionalField(req.Description),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	reimbursements = append(reimbursements, reimbursement)
	if err := s.reimbursementRepo.ReplaceReimbursements(ctx, reimbursements); err != nil {
		return nil, fmt.Errorf("failed to save reimbursements in service: %w", err)
	}

	return &reimbursement, nil
}

// ListReimbursements returns every reimbursement, newest date first.
func (s *ReimbursementService) ListReimbursements(ctx context.Context) ([]domain.Reimbursement, error) {
	reimbursements, err := s.reimbursementRepo.ListReimbursements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reimbursements in service: %w", err)
	}
	if reimbursements == nil {
		return []domain.Reimbursement{}, nil
	}
	return reimbursements, nil
}
