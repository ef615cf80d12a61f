package services

import (
	"context"
	"fmt"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
)

// MatchService maintains the filename to transaction position association.
// The association is advisorily one-to-one in both directions: conflicts are
// reported before anything is written, but force lets the operator override
// them, so the engine makes collisions visible rather than impossible.
type MatchService struct {
	matchRepo       portsrepo.ManualMatchRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

func NewMatchService(matchRepo portsrepo.ManualMatchRepositoryFacade, transactionRepo portsrepo.TransactionReader) *MatchService {
	return &MatchService{matchRepo: matchRepo, transactionRepo: transactionRepo}
}

// ListMatches returns the full filename to transaction position map.
func (s *MatchService) ListMatches(ctx context.Context) (domain.ManualMatches, error) {
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches in service: %w", err)
	}
	if matches == nil {
		return domain.ManualMatches{}, nil
	}
	return matches, nil
}

// SetMatch associates filename with the transaction at transactionIndex.
// State is read fresh from the store on every call.
//
// A transactionIndex of domain.ClearMatchIndex removes any existing entry
// for the file (no error when none exists). Otherwise the index must point
// at a live transaction. Unless force is set, the call fails with a
// TransactionConflictError when another file already holds the transaction,
// or a FileConflictError when the file already holds a different
// transaction; the transaction conflict wins when both would apply.
func (s *MatchService) SetMatch(ctx context.Context, filename string, transactionIndex int, force bool) error {
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return fmt.Errorf("failed to list matches in service: %w", err)
	}
	if matches == nil {
		matches = domain.ManualMatches{}
	}

	if transactionIndex == domain.ClearMatchIndex {
		delete(matches, filename)
		if err := s.matchRepo.ReplaceMatches(ctx, matches); err != nil {
			return fmt.Errorf("failed to save matches in service: %w", err)
		}
		return nil
	}

	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions in service: %w", err)
	}

	if transactionIndex < 0 || transactionIndex >= len(transactions) {
		return fmt.Errorf("%w: invalid transaction index %d, must be between 0 and %d",
			apperrors.ErrValidation, transactionIndex, len(transactions)-1)
	}

	if !force {
		for existingFile, existingIndex := range matches {
			if existingIndex == transactionIndex && existingFile != filename {
				txn := transactions[transactionIndex]
				return &apperrors.TransactionConflictError{
					ConflictFile:     existingFile,
					TransactionIndex: transactionIndex,
					Vendor:           txn.Vendor,
					Amount:           txn.Amount,
				}
			}
		}
		if existingIndex, ok := matches[filename]; ok && existingIndex != transactionIndex {
			conflict := &apperrors.FileConflictError{
				Filename:         filename,
				TransactionIndex: existingIndex,
			}
			// A stale match can point past the current set; report the
			// conflict without transaction details in that case.
			if existingIndex >= 0 && existingIndex < len(transactions) {
				conflict.Vendor = transactions[existingIndex].Vendor
				conflict.Amount = transactions[existingIndex].Amount
			}
			return conflict
		}
	}

	matches[filename] = transactionIndex
	if err := s.matchRepo.ReplaceMatches(ctx, matches); err != nil {
		return fmt.Errorf("failed to save matches in service: %w", err)
	}
	return nil
}
