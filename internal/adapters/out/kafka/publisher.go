// Package kafka publishes domain events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

const (
	headerEventName = "event-name"
	headerEventID   = "event-id"
)

// messageWriter is the part of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes every event as one JSON message keyed by its aggregate,
// so all changes of an order land on the same partition in order.
type Publisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter returns a writer for topic on the comma separated broker list.
func NewWriter(brokersCSV, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(ParseBrokers(brokersCSV)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(brokersCSV string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewPublisher(writer messageWriter, logger *slog.Logger) (*Publisher, error) {
	if writer == nil {
		return nil, errors.New("kafka writer is required")
	}
	return &Publisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode %s event: %w", event.EventName(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(event.AggregateKey()),
			Value: payload,
			Time:  event.OccurredAt().UTC(),
			Headers: []kafka.Header{
				{Key: headerEventName, Value: []byte(event.EventName())},
				{Key: headerEventID, Value: []byte(event.EventID().String())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("write %d event(s): %w", len(messages), err)
	}

	p.logger.DebugContext(ctx, "Events published", "count", len(messages))
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events after logging them. It is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger.With("component", "noop_publisher")}
}

func (p *NoopPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "Event dropped, no broker configured",
			"event", event.EventName(),
			"key", event.AggregateKey(),
			"occurredAt", event.OccurredAt().Format(time.RFC3339))
	}
	return nil
}
