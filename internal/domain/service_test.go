package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signups/internal/events"
)

type stubRegistry struct {
	size        int
	err         error
	enrollCalls int
	lastOp      string
	lastName    string
	lastEmail   string
}

func (s *stubRegistry) Snapshot(context.Context) map[string]Activity {
	return map[string]Activity{"Chess Club": {MaxParticipants: 12}}
}

func (s *stubRegistry) Enroll(_ context.Context, name, email string) (int, error) {
	s.enrollCalls++
	s.lastOp, s.lastName, s.lastEmail = "enroll", name, email
	return s.size, s.err
}

func (s *stubRegistry) Withdraw(_ context.Context, name, email string) (int, error) {
	s.lastOp, s.lastName, s.lastEmail = "withdraw", name, email
	return s.size, s.err
}

type recordingPublisher struct {
	err     error
	calls   int
	lastTyp string
	last    events.RosterChange
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, change events.RosterChange) error {
	p.calls++
	p.lastTyp = eventType
	p.last = change
	return p.err
}

func TestSignupPublishesEvent(t *testing.T) {
	registry := &stubRegistry{size: 3}
	publisher := &recordingPublisher{}
	service := NewService(registry, publisher)

	message, err := service.Signup(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", message)

	require.Equal(t, 1, publisher.calls)
	require.Equal(t, events.TypeSignup, publisher.lastTyp)
	require.Equal(t, "Chess Club", publisher.last.Activity)
	require.Equal(t, "newstudent@mergington.edu", publisher.last.Email)
	require.Equal(t, 3, publisher.last.RosterSize)
	require.NotEmpty(t, publisher.last.EventID)
	require.False(t, publisher.last.OccurredAt.IsZero())
}

func TestSignupBlankEmailRejected(t *testing.T) {
	registry := &stubRegistry{}
	service := NewService(registry, &recordingPublisher{})

	_, err := service.Signup(context.Background(), "Chess Club", "   ")
	require.ErrorIs(t, err, ErrEmailRequired)
	require.Zero(t, registry.enrollCalls)
}

func TestSignupTrimsEmail(t *testing.T) {
	registry := &stubRegistry{size: 1}
	service := NewService(registry, &recordingPublisher{})

	_, err := service.Signup(context.Background(), "Chess Club", "  padded@mergington.edu ")
	require.NoError(t, err)
	require.Equal(t, "padded@mergington.edu", registry.lastEmail)
}

func TestSignupRegistryErrorPassesThrough(t *testing.T) {
	registry := &stubRegistry{err: ErrAlreadyEnrolled}
	publisher := &recordingPublisher{}
	service := NewService(registry, publisher)

	_, err := service.Signup(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadyEnrolled)
	require.Zero(t, publisher.calls)
}

func TestSignupSurvivesPublishFailure(t *testing.T) {
	registry := &stubRegistry{size: 3}
	publisher := &recordingPublisher{err: errors.New("broker down")}
	service := NewService(registry, publisher)

	message, err := service.Signup(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.NotEmpty(t, message)
}

func TestUnregisterPublishesWithdrawal(t *testing.T) {
	registry := &stubRegistry{size: 1}
	publisher := &recordingPublisher{}
	service := NewService(registry, publisher)

	message, err := service.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Unregistered michael@mergington.edu from Chess Club", message)

	require.Equal(t, events.TypeWithdrawal, publisher.lastTyp)
	require.Equal(t, "withdraw", registry.lastOp)
	require.Equal(t, 1, publisher.last.RosterSize)
}

func TestUnregisterRegistryErrorPassesThrough(t *testing.T) {
	registry := &stubRegistry{err: ErrNotEnrolled}
	publisher := &recordingPublisher{}
	service := NewService(registry, publisher)

	_, err := service.Unregister(context.Background(), "Chess Club", "ghost@mergington.edu")
	require.ErrorIs(t, err, ErrNotEnrolled)
	require.Zero(t, publisher.calls)
}

func TestNilPublisherDefaultsToNoop(t *testing.T) {
	registry := &stubRegistry{size: 1}
	service := NewService(registry, nil)

	_, err := service.Signup(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
}
