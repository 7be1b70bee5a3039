package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/internal/models"
)

func activity(id string, at time.Time) models.Activity {
	return models.Activity{Base: models.Base{ID: id}, Description: "event " + id, PropertyID: "p1", OccurredAt: at}
}

func ids(activities []models.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.ID
	}
	return out
}

func TestRecentActivity(t *testing.T) {
	events := []models.Activity{
		activity("a", day(2023, time.June, 23)),
		activity("b", day(2023, time.June, 28)),
		activity("c", day(2023, time.June, 25)),
		activity("d", day(2023, time.June, 28)),
		activity("e", day(2023, time.June, 27)),
	}

	t.Run("newest_first_with_stable_ties", func(t *testing.T) {
		assert.Equal(t, []string{"b", "d", "e", "c", "a"}, ids(RecentActivity(events, 10)))
	})

	t.Run("truncates_to_n", func(t *testing.T) {
		assert.Equal(t, []string{"b", "d", "e"}, ids(RecentActivity(events, 3)))
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		RecentActivity(events, 2)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(events))
	})

	t.Run("non_positive_n", func(t *testing.T) {
		assert.Empty(t, RecentActivity(events, 0))
		assert.Empty(t, RecentActivity(events, -1))
		assert.Empty(t, RecentActivity(nil, 5))
	})
}

func TestFeed(t *testing.T) {
	dir := NewDirectory([]models.Property{{Base: models.Base{ID: "p1"}, Name: "Marina Towers"}}, nil)
	events := []models.Activity{
		activity("a", day(2023, time.June, 23)),
		{Base: models.Base{ID: "b"}, PropertyID: "gone", OccurredAt: day(2023, time.June, 24)},
	}

	feed := Feed(events, 5, dir)

	require.Len(t, feed, 2)
	assert.Equal(t, UnknownLabel, feed[0].Property)
	assert.Equal(t, "Marina Towers", feed[1].Property)
}

func TestDirectory(t *testing.T) {
	dir := NewDirectory(
		[]models.Property{{Base: models.Base{ID: "p1"}, Name: "Marina Towers"}},
		[]models.Tenant{{Base: models.Base{ID: "t1"}, Name: "John Smith"}},
	)
	known, missing, empty := "t1", "t9", ""

	assert.Equal(t, "Marina Towers", dir.PropertyName("p1"))
	assert.Equal(t, UnknownLabel, dir.PropertyName("p9"))
	assert.Equal(t, "John Smith", dir.TenantName(&known))
	assert.Equal(t, UnknownLabel, dir.TenantName(&missing))
	assert.Equal(t, "", dir.TenantName(nil))
	assert.Equal(t, "", dir.TenantName(&empty))
}
