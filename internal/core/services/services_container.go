package services

import (
	portsrepo "github.com/aldayn/dayn_backend/internal/core/ports/repositories"
	portssvc "github.com/aldayn/dayn_backend/internal/core/ports/services"
	"github.com/aldayn/dayn_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The generative-model clients are injected so the
// container stays constructible in tests without network credentials.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	completion portssvc.TextCompletionClient,
	interpreter portssvc.EntryInterpreterClient,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first since the ledger service resolves the default currency
	// through it.
	container.Settings = NewSettingsService(repos.SettingsRepo)

	container.Ledger = NewLedgerService(repos.LedgerRepo, container.Settings)
	container.Reporting = NewReportingService(repos.LedgerRepo)
	container.Advisor = NewAdvisorService(container.Reporting, container.Settings, completion)
	container.RemoteEntry = NewRemoteEntryService(container.Ledger, container.Settings, interpreter)
	container.Auth = NewTokenService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.SettingsSvcFacade = (*settingsService)(nil)
)
