package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/internal/models"
)

func sumValues(shares []Share) float64 {
	var total float64
	for _, s := range shares {
		total += s.Value
	}
	return total
}

func TestDistribute(t *testing.T) {
	t.Run("thirds_sum_to_100", func(t *testing.T) {
		shares := Distribute([]string{"a", "b", "c"}, []int64{1, 1, 1})

		require.Len(t, shares, 3)
		assert.Equal(t, 33.4, shares[0].Value)
		assert.Equal(t, 33.3, shares[1].Value)
		assert.Equal(t, 33.3, shares[2].Value)
		assert.InDelta(t, 100, sumValues(shares), 0.1)
	})

	t.Run("sevenths_sum_to_100", func(t *testing.T) {
		counts := []int64{1, 1, 1, 1, 1, 1, 1}
		labels := []string{"a", "b", "c", "d", "e", "f", "g"}

		shares := Distribute(labels, counts)

		assert.InDelta(t, 100, sumValues(shares), 0.1)
		for _, s := range shares {
			assert.GreaterOrEqual(t, s.Value, 0.0)
		}
	})

	t.Run("zero_bucket_stays_zero", func(t *testing.T) {
		shares := Distribute([]string{"a", "b", "c"}, []int64{2, 0, 1})

		assert.Equal(t, 66.7, shares[0].Value)
		assert.Equal(t, 0.0, shares[1].Value)
		assert.Equal(t, 33.3, shares[2].Value)
		assert.Equal(t, int64(0), shares[1].Count)
	})

	t.Run("empty_total", func(t *testing.T) {
		assert.Empty(t, Distribute([]string{"a"}, []int64{0}))
		assert.Empty(t, Distribute(nil, nil))
	})
}

func TestPropertyTypeDistribution(t *testing.T) {
	properties := []models.Property{
		{Type: "Single Family"},
		{Type: "Apartment Complex"},
		{Type: "Apartment Complex"},
		{Type: "Commercial"},
		{Type: "  "},
	}

	shares := PropertyTypeDistribution(properties)

	require.Len(t, shares, 4)
	assert.Equal(t, "Apartment Complex", shares[0].Label)
	assert.Equal(t, 40.0, shares[0].Value)
	assert.Equal(t, "Single Family", shares[1].Label)
	assert.Equal(t, "Commercial", shares[2].Label)
	assert.Equal(t, UnknownLabel, shares[3].Label)
	assert.InDelta(t, 100, sumValues(shares), 0.1)

	assert.Empty(t, PropertyTypeDistribution(nil))
}

func TestOccupancyDistribution(t *testing.T) {
	t.Run("caps_tenants_per_property", func(t *testing.T) {
		properties := []models.Property{property("p1", 2), property("p2", 8)}
		tenants := []models.Tenant{
			tenant("t1", "p1", models.TenantStatusActive),
			tenant("t2", "p1", models.TenantStatusActive),
			tenant("t3", "p1", models.TenantStatusActive),
			tenant("t4", "p2", models.TenantStatusLate),
			tenant("t5", "ghost", models.TenantStatusActive),
		}

		shares := OccupancyDistribution(properties, tenants)

		require.Len(t, shares, 2)
		assert.Equal(t, LabelOccupied, shares[0].Label)
		assert.Equal(t, int64(3), shares[0].Count)
		assert.Equal(t, 30.0, shares[0].Value)
		assert.Equal(t, LabelVacant, shares[1].Label)
		assert.Equal(t, int64(7), shares[1].Count)
		assert.Equal(t, 70.0, shares[1].Value)
	})

	t.Run("no_units", func(t *testing.T) {
		assert.Empty(t, OccupancyDistribution(nil, []models.Tenant{tenant("t1", "p1", models.TenantStatusActive)}))
	})
}

func TestRentCollectionDistribution(t *testing.T) {
	t.Run("buckets_by_status", func(t *testing.T) {
		tenants := []models.Tenant{
			tenant("t1", "p1", models.TenantStatusActive),
			tenant("t2", "p1", models.TenantStatusLate),
			tenant("t3", "p2", models.TenantStatusActive),
			tenant("t4", "p3", models.TenantStatusActive),
			tenant("t5", "p2", models.TenantStatusPending),
		}

		shares := RentCollectionDistribution(tenants)

		require.Len(t, shares, 3)
		assert.Equal(t, Share{Label: LabelPaid, Value: 60, Count: 3}, shares[0])
		assert.Equal(t, Share{Label: LabelPending, Value: 20, Count: 1}, shares[1])
		assert.Equal(t, Share{Label: LabelLate, Value: 20, Count: 1}, shares[2])
	})

	t.Run("is_deterministic", func(t *testing.T) {
		tenants := []models.Tenant{tenant("t1", "p1", models.TenantStatusLate)}

		assert.Equal(t, RentCollectionDistribution(tenants), RentCollectionDistribution(tenants))
	})

	t.Run("unknown_status_is_ignored", func(t *testing.T) {
		tenants := []models.Tenant{
			tenant("t1", "p1", models.TenantStatusActive),
			tenant("t2", "p1", models.TenantStatus("evicted")),
		}

		shares := RentCollectionDistribution(tenants)

		assert.Equal(t, 100.0, shares[0].Value)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, RentCollectionDistribution(nil))
	})
}

func TestDistribution(t *testing.T) {
	ds := Dataset{
		Properties: []models.Property{property("p1", 4)},
		Tenants:    []models.Tenant{tenant("t1", "p1", models.TenantStatusActive)},
	}

	for _, p := range Partitions {
		shares, ok := Distribution(p, ds)
		assert.True(t, ok, string(p))
		assert.InDelta(t, 100, sumValues(shares), 0.1, string(p))
	}

	_, ok := Distribution(Partition("by-moon-phase"), ds)
	assert.False(t, ok)
}
