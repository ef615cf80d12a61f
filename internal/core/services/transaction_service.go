package services

import (
	"context"
	"fmt"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/crestbuild/ops_backend/internal/utils/cards"
	"github.com/crestbuild/ops_backend/internal/utils/csvimport"
)

// TransactionService manages the imported statement set. The cardholder
// directory is injected so deployments can override the built-in card list.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	matchRepo       portsrepo.ManualMatchRepositoryFacade
	tagRepo         portsrepo.TransactionTagRepositoryFacade
	cardholders     map[string]string
}

func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	matchRepo portsrepo.ManualMatchRepositoryFacade,
	tagRepo portsrepo.TransactionTagRepositoryFacade,
	cardholders map[string]string,
) *TransactionService {
	if cardholders == nil {
		cardholders = cards.DefaultDirectory
	}
	return &TransactionService{
		transactionRepo: transactionRepo,
		matchRepo:       matchRepo,
		tagRepo:         tagRepo,
		cardholders:     cardholders,
	}
}

// ListTransactions returns the imported set in position order, with the
// cardholder resolved from each description. The decoration is recomputed on
// every read and never persisted.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	for i := range transactions {
		transactions[i].Cardholder = cards.Resolve(s.cardholders, transactions[i].Description)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// ImportCSV parses raw statement text and replaces the imported set.
// Manual matches and tags key on positions in the replaced set, so both are
// cleared in the same call; the summary reports how many entries that
// removed. Parsing fails only when the input has no usable header row;
// malformed data rows import with partial fields.
func (s *TransactionService) ImportCSV(ctx context.Context, csvData string) (*dto.ImportSummary, error) {
	transactions, err := csvimport.Parse(csvData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches in service: %w", err)
	}
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags in service: %w", err)
	}

	if err := s.transactionRepo.ReplaceTransactions(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to save transactions in service: %w", err)
	}
	if err := s.matchRepo.ReplaceMatches(ctx, domain.ManualMatches{}); err != nil {
		return nil, fmt.Errorf("failed to clear matches in service: %w", err)
	}
	if err := s.tagRepo.ReplaceTags(ctx, domain.TransactionTags{}); err != nil {
		return nil, fmt.Errorf("failed to clear tags in service: %w", err)
	}

	return &dto.ImportSummary{
		TransactionCount: len(transactions),
		ClearedMatches:   len(matches),
		ClearedTags:      len(tags),
	}, nil
}
