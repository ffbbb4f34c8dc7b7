package roster

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func TestSeedHasExpectedActivities(t *testing.T) {
	seed := SeedActivities()
	require.Len(t, seed, 9)

	for _, name := range []string{
		"Chess Club", "Programming Class", "Gym Class", "Soccer Team",
		"Basketball Club", "Art Workshop", "Drama Club", "Math Olympiad", "Science Club",
	} {
		require.Contains(t, seed, name)
	}
}

func TestSeedFieldsArePopulated(t *testing.T) {
	for name, activity := range SeedActivities() {
		require.NotEmpty(t, activity.Description, "activity %q", name)
		require.NotEmpty(t, activity.Schedule, "activity %q", name)
		require.Positive(t, activity.MaxParticipants, "activity %q", name)
	}
}

func TestSeedCapacitiesAreReasonable(t *testing.T) {
	for name, activity := range SeedActivities() {
		require.GreaterOrEqual(t, activity.MaxParticipants, 5, "activity %q", name)
		require.LessOrEqual(t, activity.MaxParticipants, 30, "activity %q", name)
		require.LessOrEqual(t, len(activity.Participants), activity.MaxParticipants, "activity %q", name)
	}
}

func TestSeedParticipantsAreValidSchoolEmails(t *testing.T) {
	for name, activity := range SeedActivities() {
		for _, email := range activity.Participants {
			require.Regexp(t, emailPattern, email, "activity %q", name)
			require.True(t, strings.HasSuffix(email, "@mergington.edu"), "participant %q in %q", email, name)

			username := strings.SplitN(email, "@", 2)[0]
			require.Regexp(t, `^[a-z]{2,}$`, username, "participant %q in %q", email, name)
		}
	}
}

func TestSeedHasNoDuplicateParticipants(t *testing.T) {
	for name, activity := range SeedActivities() {
		seen := make(map[string]struct{}, len(activity.Participants))
		for _, email := range activity.Participants {
			_, dup := seen[email]
			require.False(t, dup, "duplicate %q in %q", email, name)
			seen[email] = struct{}{}
		}
	}
}

func TestSeedSchedulesNameDayAndTime(t *testing.T) {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	for name, activity := range SeedActivities() {
		var hasDay bool
		for _, day := range days {
			if strings.Contains(activity.Schedule, day) {
				hasDay = true
				break
			}
		}
		require.True(t, hasDay, "schedule for %q missing day: %s", name, activity.Schedule)
		require.Contains(t, activity.Schedule, ":", "schedule for %q missing time", name)
	}
}
