// Package roster provides the in-memory activity registry.
package roster

import (
	"context"
	"sync"

	"example.com/signups/internal/domain"
)

// MemoryRegistry stores activities and their rosters in memory. The activity
// set is fixed at construction; only participant lists mutate.
type MemoryRegistry struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewMemoryRegistry constructs a registry from the given activities.
func NewMemoryRegistry(activities map[string]domain.Activity) *MemoryRegistry {
	store := make(map[string]domain.Activity, len(activities))
	for name, activity := range activities {
		activity.Participants = append([]string(nil), activity.Participants...)
		store[name] = activity
	}
	return &MemoryRegistry{activities: store}
}

// Snapshot returns a deep copy of every activity, safe for callers to mutate.
func (r *MemoryRegistry) Snapshot(ctx context.Context) map[string]domain.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = append([]string(nil), activity.Participants...)
		out[name] = activity
	}
	return out
}

// Enroll appends email to the named activity's roster and returns the new
// roster size. Duplicate detection runs before the capacity check.
func (r *MemoryRegistry) Enroll(ctx context.Context, name, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return 0, domain.ErrAlreadyEnrolled
		}
	}
	if len(activity.Participants) >= activity.MaxParticipants {
		return 0, domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return len(activity.Participants), nil
}

// Withdraw removes email from the named activity's roster and returns the new
// roster size.
func (r *MemoryRegistry) Withdraw(ctx context.Context, name, email string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return 0, domain.ErrActivityNotFound
	}
	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i:i], activity.Participants[i+1:]...)
			r.activities[name] = activity
			return len(activity.Participants), nil
		}
	}
	return 0, domain.ErrNotEnrolled
}
