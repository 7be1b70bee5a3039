package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/internal/models"
)

func TestComputeTrends(t *testing.T) {
	now := day(2023, time.June, 20)
	added := day(2023, time.June, 2)
	ds := Dataset{
		Properties: []models.Property{
			{Base: models.Base{ID: "p1", CreatedAt: day(2023, time.June, 1)}},
			{Base: models.Base{ID: "p2", CreatedAt: day(2023, time.June, 1)}, AddedDate: ptrTime(day(2022, time.January, 1))},
			{Base: models.Base{ID: "p3", CreatedAt: day(2022, time.June, 1)}, AddedDate: &added},
		},
		Tenants: []models.Tenant{
			{LeaseStart: day(2023, time.June, 1)},
			{LeaseStart: day(2023, time.May, 1)},
		},
		Transactions: []models.Transaction{
			dated(models.TransactionTypeIncome, 1120, day(2023, time.June, 1)),
			dated(models.TransactionTypeIncome, 1000, day(2023, time.May, 1)),
			{Type: models.TransactionTypeIncome, Category: "Late Fee", Amount: 40, Date: day(2023, time.June, 1)},
		},
	}

	tr := ComputeTrends(ds, now)

	assert.Equal(t, "2023-06", tr.Month)
	assert.Equal(t, 2, tr.NewProperties)
	assert.Equal(t, 1, tr.NewTenants)
	assert.Equal(t, int64(1120), tr.RentIncomeThisMonth)
	assert.Equal(t, int64(1000), tr.RentIncomeLastMonth)
	require.NotNil(t, tr.RentIncomeChange)
	assert.Equal(t, 12.0, *tr.RentIncomeChange)

	empty := ComputeTrends(Dataset{}, now)
	assert.Nil(t, empty.RentIncomeChange)
}

func TestPropertyPerformance(t *testing.T) {
	ds := Dataset{
		Properties: []models.Property{property("p1", 4), property("p2", 0)},
		Tenants: []models.Tenant{
			tenant("t1", "p1", models.TenantStatusActive),
			tenant("t2", "p1", models.TenantStatusActive),
			tenant("t3", "ghost", models.TenantStatusActive),
		},
		Transactions: []models.Transaction{
			{Type: models.TransactionTypeIncome, Category: "Rent", Amount: 2000, PropertyID: "p1"},
			{Type: models.TransactionTypeExpense, Category: "Maintenance", Amount: 300, PropertyID: "p1"},
			{Type: models.TransactionTypeExpense, Category: "Insurance", Amount: 100, PropertyID: "p2"},
			{Type: models.TransactionTypeExpense, Category: "Utilities", Amount: 70, PropertyID: "ghost"},
		},
	}

	stats := PropertyPerformance(ds)

	require.Len(t, stats, 3)
	assert.Equal(t, "p1", stats[0].PropertyID)
	assert.Equal(t, 2, stats[0].Tenants)
	assert.Equal(t, int64(1700), stats[0].NetIncome)
	require.NotNil(t, stats[0].OccupancyRate)
	assert.Equal(t, 50.0, *stats[0].OccupancyRate)
	assert.Nil(t, stats[1].OccupancyRate)
	assert.Equal(t, int64(-100), stats[1].NetIncome)
	assert.Equal(t, UnknownLabel, stats[2].Name)
	assert.Equal(t, 1, stats[2].Tenants)
	assert.Equal(t, int64(70), stats[2].Expenses)

	assert.Empty(t, PropertyPerformance(Dataset{}))
}

func ptrTime(t time.Time) *time.Time { return &t }
