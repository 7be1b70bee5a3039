package analytics

import (
	"sort"
	"time"

	"rentfolio/internal/models"
)

// RecentActivity returns the n most recent activities, newest first.
// Activities with equal timestamps keep their input order. The input slice
// is left untouched.
func RecentActivity(activities []models.Activity, n int) []models.Activity {
	if n <= 0 || len(activities) == 0 {
		return []models.Activity{}
	}
	sorted := make([]models.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// FeedEntry is an activity resolved for display.
type FeedEntry struct {
	ID          string              `json:"id"`
	Kind        models.ActivityKind `json:"kind"`
	Description string              `json:"description"`
	PropertyID  string              `json:"property_id"`
	Property    string              `json:"property"`
	OccurredAt  time.Time           `json:"occurred_at"`
}

// Feed returns the n most recent activities with their property names.
func Feed(activities []models.Activity, n int, dir *Directory) []FeedEntry {
	recent := RecentActivity(activities, n)
	entries := make([]FeedEntry, len(recent))
	for i, a := range recent {
		entries[i] = FeedEntry{
			ID:          a.ID,
			Kind:        a.Kind,
			Description: a.Description,
			PropertyID:  a.PropertyID,
			Property:    dir.PropertyName(a.PropertyID),
			OccurredAt:  a.OccurredAt,
		}
	}
	return entries
}
