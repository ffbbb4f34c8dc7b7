// Package events defines roster change event payloads and publishers.
package events

import (
	"context"
	"time"
)

// Event types carried in the event_type message header.
const (
	TypeSignup     = "roster.signup"
	TypeWithdrawal = "roster.withdrawal"
)

// RosterChange is the message emitted when a roster mutation commits.
type RosterChange struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits roster change events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, eventType string, change RosterChange) error
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

// Publish performs no action.
func (NoopPublisher) Publish(context.Context, string, RosterChange) error { return nil }
