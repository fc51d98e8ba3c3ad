// Package redisstore provides a Redis-backed SequenceStore.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/myerp_ledger/internal/apperrors"
	"github.com/SscSPs/myerp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/myerp_ledger/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ledger:sequence:"

// SequenceStore keeps one integer key per (journal, year) and advances it with INCR,
// which Redis executes atomically.
type SequenceStore struct {
	client redis.UniversalClient
}

// NewSequenceStore creates a SequenceStore on top of an existing client.
func NewSequenceStore(client redis.UniversalClient) *SequenceStore {
	return &SequenceStore{client: client}
}

// NewClient opens a client and checks the server answers.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func sequenceKey(key domain.SequenceKey) string {
	return fmt.Sprintf("%s%s:%04d", keyPrefix, key.JournalCode, key.Year)
}

func (s *SequenceStore) FindSequence(ctx context.Context, key domain.SequenceKey) (int, error) {
	value, err := s.client.Get(ctx, sequenceKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, apperrors.NewNotFound("no sequence for %s", key)
	}
	if err != nil {
		return 0, apperrors.NewTechnical(apperrors.CodePersistence, "redis get sequence "+key.String(), err)
	}
	return value, nil
}

func (s *SequenceStore) NextSequence(ctx context.Context, key domain.SequenceKey) (int, error) {
	value, err := s.client.Incr(ctx, sequenceKey(key)).Result()
	if err != nil {
		return 0, apperrors.NewTechnical(apperrors.CodePersistence, "redis incr sequence "+key.String(), err)
	}
	return int(value), nil
}

func (s *SequenceStore) UpsertSequence(ctx context.Context, key domain.SequenceKey, value int) error {
	if err := s.client.Set(ctx, sequenceKey(key), value, 0).Err(); err != nil {
		return apperrors.NewTechnical(apperrors.CodePersistence, "redis set sequence "+key.String(), err)
	}
	return nil
}

var _ portsrepo.SequenceStore = (*SequenceStore)(nil)
