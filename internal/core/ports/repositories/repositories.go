package repositories

// RepositoryProvider holds instances of all repositories for dependency injection.
type RepositoryProvider struct {
	VendorRepo        VendorRepositoryFacade
	ProjectRepo       ProjectRepositoryFacade
	TeamMemberRepo    TeamMemberRepositoryFacade
	ReimbursementRepo ReimbursementRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	MatchRepo         ManualMatchRepositoryFacade
	TagRepo           TransactionTagRepositoryFacade
}
