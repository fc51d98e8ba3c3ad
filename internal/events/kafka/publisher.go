package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/myerp_ledger/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic receives entry events when no topic is configured.
const DefaultTopic = "ledger.entries"

// Publishing runs inline with entry writes, so a message is flushed without waiting
// for a batch to fill and a down broker costs at most publishTimeout per write.
const (
	batchTimeout   = 5 * time.Millisecond
	maxAttempts    = 3
	publishTimeout = 2 * time.Second
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher sends entry events to a Kafka topic, keyed by entry id so that the
// events of one entry stay ordered within a partition.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a publisher writing to topic on brokers.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: batchTimeout,
			MaxAttempts:  maxAttempts,
			WriteTimeout: publishTimeout,
		},
	}
}

// buildMessage encodes an event as a Kafka message.
func buildMessage(event events.EntryEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal entry event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.EntryID, 10)),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.EventID)},
		},
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, event events.EntryEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write entry event %s: %w", event.EventID, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

var _ events.EventPublisher = (*Publisher)(nil)
