package events

import (
	"context"
	"time"
)

// EntryEventType names what happened to an entry.
type EntryEventType string

const (
	EntryInserted EntryEventType = "entry.inserted"
	EntryUpdated  EntryEventType = "entry.updated"
	EntryDeleted  EntryEventType = "entry.deleted"
)

// EntryEvent is published after an entry change has been persisted.
type EntryEvent struct {
	EventID     string         `json:"eventId"`
	Type        EntryEventType `json:"type"`
	EntryID     int64          `json:"entryId"`
	Reference   string         `json:"reference,omitempty"`
	JournalCode string         `json:"journalCode,omitempty"`
	Actor       string         `json:"actor,omitempty"`
	OccurredAt  time.Time      `json:"occurredAt"`
}

// EventPublisher delivers entry events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event EntryEvent) error
}

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, EntryEvent) error { return nil }

type actorKey struct{}

// WithActor returns a copy of ctx naming who triggers the entry changes made with it.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor, or "".
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
