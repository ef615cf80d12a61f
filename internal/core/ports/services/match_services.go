package services

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// MatchReaderSvc defines read operations for manual match data.
type MatchReaderSvc interface {
	// ListMatches retrieves the full filename to transaction position map.
	ListMatches(ctx context.Context) (domain.ManualMatches, error)
}

// MatchWriterSvc defines write operations for manual match data.
type MatchWriterSvc interface {
	// SetMatch associates filename with the transaction at
	// transactionIndex. domain.ClearMatchIndex removes any existing
	// association. Conflicting associations are reported as typed errors
	// unless force is set.
	SetMatch(ctx context.Context, filename string, transactionIndex int, force bool) error
}

// MatchSvcFacade combines all match-related service interfaces.
type MatchSvcFacade interface {
	MatchReaderSvc
	MatchWriterSvc
}
