package services

import (
	"github.com/SscSPs/myerp_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Reference = NewReferenceService(repos.SequenceRepo, repos.JournalRepo)
	container.Validator = NewValidationService(
		repos.AccountRepo,
		repos.JournalRepo,
		repos.EntryRepo,
		WithCurrencyPrecision(cfg.CurrencyPrecision),
	)
	container.Balance = NewBalanceService(repos.AccountRepo, repos.EntryRepo)

	// The ledger facade delegates to the services above
	container.Ledger = NewLedgerService(
		repos,
		container.Reference,
		container.Validator,
		container.Balance,
		WithEventPublisher(publisher),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
	_ portssvc.ReferenceGeneratorSvc = (*referenceService)(nil)
	_ portssvc.EntryValidatorSvc     = (*validationService)(nil)
	_ portssvc.BalanceCalculatorSvc  = (*balanceService)(nil)
)
