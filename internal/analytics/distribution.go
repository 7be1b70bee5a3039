package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rentfolio/internal/models"
)

// Partition names a rule that splits a record set into labeled buckets.
type Partition string

const (
	PartitionPropertyType   Partition = "property-types"
	PartitionOccupancy      Partition = "occupancy"
	PartitionRentCollection Partition = "rent-collection"
)

// Partitions lists every supported partition in display order.
var Partitions = []Partition{PartitionPropertyType, PartitionOccupancy, PartitionRentCollection}

// Bucket labels used by the fixed partitions.
const (
	LabelOccupied = "Occupied"
	LabelVacant   = "Vacant"
	LabelPaid     = "Paid"
	LabelPending  = "Pending"
	LabelLate     = "Late"
)

// Share is one labeled bucket of a distribution. Value is a percentage with
// one decimal place; the values of a non-empty distribution add up to 100.
type Share struct {
	Label string  `json:"name"`
	Value float64 `json:"value"`
	Count int64   `json:"count"`
}

// Distribute turns bucket counts into percentage shares using the largest
// remainder method on tenths of a percent, so the shares always sum to
// exactly 100.0. Remainder ties go to the earlier bucket. A zero total
// yields an empty distribution.
func Distribute(labels []string, counts []int64) []Share {
	var total int64
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	if total == 0 || len(labels) != len(counts) {
		return []Share{}
	}

	const scale = 1000 // 100% in tenths
	tenths := make([]int64, len(counts))
	remainders := make([]int64, len(counts))
	var assigned int64
	for i, c := range counts {
		if c <= 0 {
			continue
		}
		tenths[i] = c * scale / total
		remainders[i] = c * scale % total
		assigned += tenths[i]
	}

	order := make([]int, len(counts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for k := int64(0); k < scale-assigned; k++ {
		tenths[order[k]]++
	}

	shares := make([]Share, len(labels))
	for i, label := range labels {
		c := counts[i]
		if c < 0 {
			c = 0
		}
		shares[i] = Share{
			Label: label,
			Value: decimal.New(tenths[i], -1).InexactFloat64(),
			Count: c,
		}
	}
	return shares
}

// PropertyTypeDistribution groups properties by their type. Buckets are
// ordered by descending count, then by first appearance. Blank types are
// grouped under UnknownLabel.
func PropertyTypeDistribution(properties []models.Property) []Share {
	var labels []string
	counts := map[string]int64{}
	for _, p := range properties {
		label := strings.TrimSpace(p.Type)
		if label == "" {
			label = UnknownLabel
		}
		if _, seen := counts[label]; !seen {
			labels = append(labels, label)
		}
		counts[label]++
	}
	sort.SliceStable(labels, func(a, b int) bool {
		return counts[labels[a]] > counts[labels[b]]
	})

	ordered := make([]int64, len(labels))
	for i, l := range labels {
		ordered[i] = counts[l]
	}
	return Distribute(labels, ordered)
}

// OccupancyDistribution splits all units into occupied and vacant. A
// property cannot have more occupied units than it has units, and tenants
// of unknown properties occupy nothing.
func OccupancyDistribution(properties []models.Property, tenants []models.Tenant) []Share {
	perProperty := make(map[string]int, len(properties))
	for _, t := range tenants {
		perProperty[t.PropertyID]++
	}

	var occupied, vacant int64
	seen := make(map[string]bool, len(properties))
	for _, p := range properties {
		units := nonNegative(p.Units)
		taken := 0
		if !seen[p.ID] {
			taken = min(perProperty[p.ID], units)
			seen[p.ID] = true
		}
		occupied += int64(taken)
		vacant += int64(units - taken)
	}
	return Distribute([]string{LabelOccupied, LabelVacant}, []int64{occupied, vacant})
}

// RentBucket maps a tenant status onto its rent-collection bucket.
// ok is false for statuses outside the known set.
func RentBucket(status models.TenantStatus) (label string, ok bool) {
	switch status {
	case models.TenantStatusActive:
		return LabelPaid, true
	case models.TenantStatusPending:
		return LabelPending, true
	case models.TenantStatusLate:
		return LabelLate, true
	}
	return "", false
}

// RentCollectionDistribution buckets tenants into Paid, Pending and Late by
// their status. Tenants with an unrecognised status are left out.
func RentCollectionDistribution(tenants []models.Tenant) []Share {
	labels := []string{LabelPaid, LabelPending, LabelLate}
	index := map[string]int{LabelPaid: 0, LabelPending: 1, LabelLate: 2}
	counts := make([]int64, len(labels))
	for _, t := range tenants {
		if label, ok := RentBucket(t.Status); ok {
			counts[index[label]]++
		}
	}
	return Distribute(labels, counts)
}

// Distribution evaluates the named partition over ds. ok is false for an
// unknown partition.
func Distribution(p Partition, ds Dataset) (shares []Share, ok bool) {
	switch p {
	case PartitionPropertyType:
		return PropertyTypeDistribution(ds.Properties), true
	case PartitionOccupancy:
		return OccupancyDistribution(ds.Properties, ds.Tenants), true
	case PartitionRentCollection:
		return RentCollectionDistribution(ds.Tenants), true
	}
	return nil, false
}
