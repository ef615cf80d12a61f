package services

import (
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Vendor = NewVendorService(repos.VendorRepo)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.TeamMember = NewTeamMemberService(repos.TeamMemberRepo)
	container.Reimbursement = NewReimbursementService(repos.ReimbursementRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.MatchRepo, repos.TagRepo, cfg.CardholderDirectory)
	container.Match = NewMatchService(repos.MatchRepo, repos.TransactionRepo)
	container.Tag = NewTagService(repos.TagRepo)

	return container
}
