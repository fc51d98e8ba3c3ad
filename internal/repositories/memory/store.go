package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
)

// Store is an in-memory implementation of every ledger repository port.
// It is safe for concurrent use; each operation holds the store mutex for its whole duration.
type Store struct {
	mu        sync.Mutex
	accounts  map[int]domain.Account
	journals  map[string]domain.Journal
	entries   map[int64]domain.Entry
	sequences map[domain.SequenceKey]int
	lastID    int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts:  make(map[int]domain.Account),
		journals:  make(map[string]domain.Journal),
		entries:   make(map[int64]domain.Entry),
		sequences: make(map[domain.SequenceKey]int),
	}
}

// NewRepositoryProvider exposes a single store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  store,
		JournalRepo:  store,
		EntryRepo:    store,
		SequenceRepo: store,
	}
}

// AddAccounts seeds the chart of accounts.
func (s *Store) AddAccounts(accounts ...domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range accounts {
		s.accounts[a.Code] = a
	}
}

// AddJournals seeds the journals.
func (s *Store) AddJournals(journals ...domain.Journal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range journals {
		s.journals[j.Code] = j
	}
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (s *Store) FindAccountByCode(ctx context.Context, code int) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[code]
	if !ok {
		return nil, apperrors.NewNotFound("account %d not found", code)
	}
	return &a, nil
}

func (s *Store) FindAccountsByCodes(ctx context.Context, codes []int) (map[int]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[int]domain.Account, len(codes))
	for _, c := range codes {
		if a, ok := s.accounts[c]; ok {
			result[c] = a
		}
	}
	return result, nil
}

func (s *Store) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Journal, 0, len(s.journals))
	for _, j := range s.journals {
		result = append(result, j)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (s *Store) FindJournalByCode(ctx context.Context, code string) (*domain.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.journals[code]
	if !ok {
		return nil, apperrors.NewNotFound("journal %s not found", code)
	}
	return &j, nil
}

func (s *Store) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedEntries(func(domain.Entry) bool { return true }), nil
}

func (s *Store) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.sortedEntries(func(e domain.Entry) bool { return inRange(e.Date, &start, &end) })
	if len(result) == 0 {
		return nil, apperrors.NewNotFound("no entries between %s and %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return result, nil
}

func (s *Store) FindEntryByID(ctx context.Context, id int64) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, apperrors.NewNotFound("entry %d not found", id)
	}
	e = cloneEntry(e)
	return &e, nil
}

func (s *Store) FindEntryByReference(ctx context.Context, ref string) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Reference == ref {
			e = cloneEntry(e)
			return &e, nil
		}
	}
	return nil, apperrors.NewNotFound("entry with reference %s not found", ref)
}

func (s *Store) FindLinesForAccount(ctx context.Context, accountCode int, start, end *time.Time) ([]domain.EntryLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []domain.EntryLine
	for _, e := range s.sortedEntries(func(e domain.Entry) bool { return inRange(e.Date, start, end) }) {
		for _, l := range e.Lines {
			if l.AccountCode == accountCode {
				result = append(result, l)
			}
		}
	}
	return result, nil
}

// InsertEntry stores a new entry. A reference already held by another entry is refused.
func (s *Store) InsertEntry(ctx context.Context, entry domain.Entry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Reference != "" {
		for _, e := range s.entries {
			if e.Reference == entry.Reference {
				return 0, apperrors.NewDuplicateReference("failed to insert entry " + entry.Reference)
			}
		}
	}

	s.lastID++
	entry.ID = s.lastID
	s.entries[entry.ID] = cloneEntry(entry)
	return entry.ID, nil
}

func (s *Store) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entry.ID]; !ok {
		return apperrors.NewNotFound("entry %d not found", entry.ID)
	}
	s.entries[entry.ID] = cloneEntry(entry)
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return apperrors.NewNotFound("entry %d not found", id)
	}
	delete(s.entries, id)
	return nil
}

func (s *Store) FindSequence(ctx context.Context, key domain.SequenceKey) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.sequences[key]
	if !ok {
		return 0, apperrors.NewNotFound("no sequence for %s", key)
	}
	return v, nil
}

func (s *Store) NextSequence(ctx context.Context, key domain.SequenceKey) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequences[key]++
	return s.sequences[key], nil
}

func (s *Store) UpsertSequence(ctx context.Context, key domain.SequenceKey, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequences[key] = value
	return nil
}

// sortedEntries must be called with mu held.
func (s *Store) sortedEntries(keep func(domain.Entry) bool) []domain.Entry {
	result := make([]domain.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if keep(e) {
			result = append(result, cloneEntry(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func inRange(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

func cloneEntry(e domain.Entry) domain.Entry {
	e.Lines = append([]domain.EntryLine(nil), e.Lines...)
	return e
}

// Compile-time check: ensure Store implements every repository port
var (
	_ portsrepo.AccountReader         = (*Store)(nil)
	_ portsrepo.JournalReader         = (*Store)(nil)
	_ portsrepo.EntryRepositoryFacade = (*Store)(nil)
	_ portsrepo.SequenceStore         = (*Store)(nil)
)
