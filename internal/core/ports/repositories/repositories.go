package repositories

// RepositoryProvider aggregates the concrete repositories handed to the
// service container at startup.
type RepositoryProvider struct {
	LedgerRepo   LedgerRepositoryFacade
	SettingsRepo SettingsRepositoryFacade
}
