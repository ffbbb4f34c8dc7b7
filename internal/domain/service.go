// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/signups/internal/events"
	"example.com/signups/internal/observability"
)

var (
	// ErrActivityNotFound indicates the referenced activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled indicates the email is already on the activity roster.
	ErrAlreadyEnrolled = errors.New("student is already signed up")
	// ErrNotEnrolled indicates the email is not on the activity roster.
	ErrNotEnrolled = errors.New("student is not signed up for this activity")
	// ErrActivityFull indicates the roster has reached max participants.
	ErrActivityFull = errors.New("activity is full")
	// ErrEmailRequired indicates a blank email was supplied.
	ErrEmailRequired = errors.New("email is required")
)

// Registry holds the authoritative activity rosters.
type Registry interface {
	Snapshot(ctx context.Context) map[string]Activity
	Enroll(ctx context.Context, activity, email string) (int, error)
	Withdraw(ctx context.Context, activity, email string) (int, error)
}

// Service orchestrates roster mutations and event publication.
type Service struct {
	registry  Registry
	publisher events.Publisher
	logger    *log.Logger
}

// NewService constructs a Service.
func NewService(registry Registry, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		registry:  registry,
		publisher: publisher,
		logger:    log.New(log.Writer(), "[signups] ", log.LstdFlags),
	}
}

// ListActivities returns a snapshot of every activity and its roster.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.registry.Snapshot(ctx)
}

// Signup enrolls email in the named activity and returns a confirmation message.
func (s *Service) Signup(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	size, err := s.registry.Enroll(ctx, activity, email)
	if err != nil {
		return "", err
	}

	observability.RecordSignup(activity, size)
	s.publish(ctx, events.TypeSignup, activity, email, size)
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity and returns a confirmation message.
func (s *Service) Unregister(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	size, err := s.registry.Withdraw(ctx, activity, email)
	if err != nil {
		return "", err
	}

	observability.RecordWithdrawal(activity, size)
	s.publish(ctx, events.TypeWithdrawal, activity, email, size)
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

// publish emits a roster change event. Publish failures are logged, never
// surfaced: the mutation has already committed.
func (s *Service) publish(ctx context.Context, eventType, activity, email string, size int) {
	change := events.RosterChange{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Email:      email,
		RosterSize: size,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, eventType, change); err != nil {
		s.logger.Printf("publish %s for %q: %v", eventType, activity, err)
	}
}
