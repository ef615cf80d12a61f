package repositories

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// ManualMatchReader defines read operations for manual match data.
type ManualMatchReader interface {
	// ListMatches retrieves the full filename to transaction position map.
	ListMatches(ctx context.Context) (domain.ManualMatches, error)
}

// ManualMatchWriter defines write operations for manual match data.
type ManualMatchWriter interface {
	// ReplaceMatches atomically replaces the whole match table.
	ReplaceMatches(ctx context.Context, matches domain.ManualMatches) error
}

// ManualMatchRepositoryFacade combines all match-related repository interfaces.
type ManualMatchRepositoryFacade interface {
	ManualMatchReader
	ManualMatchWriter
}
