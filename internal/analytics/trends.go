package analytics

import (
	"time"

	"rentfolio/internal/models"
)

// Trends compares the current month with the previous one.
type Trends struct {
	Month               string   `json:"month"`
	NewProperties       int      `json:"new_properties"`
	NewTenants          int      `json:"new_tenants"`
	RentIncomeThisMonth int64    `json:"rent_income_this_month"`
	RentIncomeLastMonth int64    `json:"rent_income_last_month"`
	RentIncomeChange    *float64 `json:"rent_income_change"`
}

// ComputeTrends counts properties added and leases started in the month of
// now, and the month-over-month change of rent income. A property's added
// date falls back to its creation time. RentIncomeChange is nil when last
// month had no rent income.
func ComputeTrends(ds Dataset, now time.Time) Trends {
	current := MonthOf(now)
	previous := current.AddMonths(-1)
	tr := Trends{Month: current.String()}

	for _, p := range ds.Properties {
		added := p.CreatedAt
		if p.AddedDate != nil {
			added = *p.AddedDate
		}
		if !added.IsZero() && MonthOf(added) == current {
			tr.NewProperties++
		}
	}
	for _, t := range ds.Tenants {
		if !t.LeaseStart.IsZero() && MonthOf(t.LeaseStart) == current {
			tr.NewTenants++
		}
	}
	for _, tx := range ds.Transactions {
		if tx.Date.IsZero() || !isRentIncome(tx) {
			continue
		}
		switch MonthOf(tx.Date) {
		case current:
			tr.RentIncomeThisMonth += tx.Amount
		case previous:
			tr.RentIncomeLastMonth += tx.Amount
		}
	}
	tr.RentIncomeChange = Change(tr.RentIncomeLastMonth, tr.RentIncomeThisMonth)
	return tr
}

// PropertyStats is the performance of a single property.
type PropertyStats struct {
	PropertyID    string   `json:"property_id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Units         int      `json:"units"`
	Tenants       int      `json:"tenants"`
	OccupancyRate *float64 `json:"occupancy_rate"`
	RentIncome    int64    `json:"rent_income"`
	Expenses      int64    `json:"expenses"`
	NetIncome     int64    `json:"net_income"`
}

// PropertyPerformance summarizes every property in input order. Tenants and
// transactions pointing at unknown properties are gathered in a trailing
// row named UnknownLabel, which is omitted when there are none.
func PropertyPerformance(ds Dataset) []PropertyStats {
	stats := make([]PropertyStats, 0, len(ds.Properties)+1)
	index := make(map[string]int, len(ds.Properties))
	for _, p := range ds.Properties {
		if _, dup := index[p.ID]; dup {
			continue
		}
		index[p.ID] = len(stats)
		stats = append(stats, PropertyStats{
			PropertyID: p.ID,
			Name:       p.Name,
			Type:       p.Type,
			Units:      nonNegative(p.Units),
		})
	}

	unknown := PropertyStats{Name: UnknownLabel}
	hasUnknown := false
	row := func(propertyID string) *PropertyStats {
		if i, ok := index[propertyID]; ok {
			return &stats[i]
		}
		hasUnknown = true
		return &unknown
	}

	for _, t := range ds.Tenants {
		row(t.PropertyID).Tenants++
	}
	for _, tx := range ds.Transactions {
		switch {
		case isRentIncome(tx):
			row(tx.PropertyID).RentIncome += tx.Amount
		case tx.Type == models.TransactionTypeExpense:
			row(tx.PropertyID).Expenses += tx.Amount
		}
	}

	if hasUnknown {
		stats = append(stats, unknown)
	}
	for i := range stats {
		stats[i].NetIncome = stats[i].RentIncome - stats[i].Expenses
		stats[i].OccupancyRate = Percent(int64(stats[i].Tenants), int64(stats[i].Units))
	}
	return stats
}
