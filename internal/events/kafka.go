package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes roster events to a single topic, keyed by activity so
// per-activity ordering is preserved across partitions.
type KafkaPublisher struct {
	brokers []string
	topic   string

	mu     sync.Mutex
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topic: topic}
}

// Publish encodes the change as JSON and hands it to an async writer, so
// request handlers never block on the broker.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, change RosterChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(change.Activity),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "activity", Value: []byte(change.Activity)},
		},
	}
	return p.ensureWriter().WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) ensureWriter() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireOne,
			Compression:  kafka.Snappy,
			Async:        true,
		}
	}
	return p.writer
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
