package pgsql

import (
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgsql repositories over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		VendorRepo:        newPgxVendorRepository(pool),
		ProjectRepo:       newPgxProjectRepository(pool),
		TeamMemberRepo:    newPgxTeamMemberRepository(pool),
		ReimbursementRepo: newPgxReimbursementRepository(pool),
		TransactionRepo:   newPgxTransactionRepository(pool),
		MatchRepo:         newPgxManualMatchRepository(pool),
		TagRepo:           newPgxTransactionTagRepository(pool),
	}
}
