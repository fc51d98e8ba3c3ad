package pgsql

import (
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository on the same pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		EntryRepo:    newPgxEntryRepository(dbPool),
		SequenceRepo: newPgxSequenceRepository(dbPool),
	}
}
