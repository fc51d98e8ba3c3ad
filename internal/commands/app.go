package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	"github.com/SscSPs/myerp_ledger/internal/core/ports/events"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/myerp_ledger/internal/core/ports/services"
	"github.com/SscSPs/myerp_ledger/internal/core/services"
	"github.com/SscSPs/myerp_ledger/internal/events/kafka"
	"github.com/SscSPs/myerp_ledger/internal/platform/config"
	"github.com/SscSPs/myerp_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/myerp_ledger/internal/repositories/memory"
	"github.com/SscSPs/myerp_ledger/internal/repositories/redisstore"
	"github.com/SscSPs/myerp_ledger/pkg/database"
)

// app holds the wired services and the resources to release on exit.
type app struct {
	services *portssvc.ServiceContainer
	closers  []func()
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp wires repositories, the event publisher and the services from cfg.
func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	repos, err := a.buildRepositories(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	var publisher events.EventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		a.closers = append(a.closers, func() {
			if err := p.Close(); err != nil {
				slog.Error("Failed to close Kafka publisher", slog.String("error", err.Error()))
			}
		})
		publisher = p
		slog.Info("Entry events published to Kafka", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.KafkaTopic))
	}

	a.services = services.NewServiceContainer(cfg, repos, publisher)
	return a, nil
}

func (a *app) buildRepositories(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, error) {
	var repos portsrepo.RepositoryProvider

	switch cfg.StorageBackend {
	case config.BackendMemory:
		store := memory.NewStore()
		seedReferenceData(store)
		repos = memory.NewRepositoryProvider(store)
		slog.Warn("Using in-memory storage. Entries are lost on exit.")
	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repos, fmt.Errorf("initializing database pool: %w", err)
		}
		a.closers = append(a.closers, func() { database.ClosePgxPool(dbPool) })
		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	switch cfg.SequenceBackend {
	case config.BackendRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return repos, fmt.Errorf("connecting to redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		repos.SequenceRepo = redisstore.NewSequenceStore(client)
		slog.Info("Journal sequences stored in Redis", slog.String("addr", cfg.RedisAddr))
	case config.BackendMemory:
		if cfg.StorageBackend != config.BackendMemory {
			repos.SequenceRepo = memory.NewStore()
		}
	}

	return repos, nil
}

// seedReferenceData loads the same journals and accounts as the seed migration.
func seedReferenceData(store *memory.Store) {
	store.AddJournals(
		domain.Journal{Code: "AC", Label: "Achat"},
		domain.Journal{Code: "VE", Label: "Vente"},
		domain.Journal{Code: "BQ", Label: "Banque"},
		domain.Journal{Code: "OD", Label: "Opérations Diverses"},
	)
	store.AddAccounts(
		domain.Account{Code: 401, Label: "Fournisseurs", Type: domain.Liability},
		domain.Account{Code: 411, Label: "Clients", Type: domain.Asset},
		domain.Account{Code: 4456, Label: "Taxes sur le chiffre d'affaires déductibles", Type: domain.Asset},
		domain.Account{Code: 4457, Label: "Taxes sur le chiffre d'affaires collectées", Type: domain.Liability},
		domain.Account{Code: 512, Label: "Banque", Type: domain.Asset},
		domain.Account{Code: 606, Label: "Achats non stockés de matières et fournitures", Type: domain.Expense},
		domain.Account{Code: 706, Label: "Prestations de services", Type: domain.Income},
	)
}
