package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dated(kind models.TransactionType, amount int64, date time.Time) models.Transaction {
	return models.Transaction{Type: kind, Category: "Rent", Amount: amount, Date: date}
}

func TestMonth(t *testing.T) {
	m, err := ParseMonth("2023-06")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2023, Month: time.June}, m)
	assert.Equal(t, "2023-06", m.String())
	assert.Equal(t, "Jun", m.Short())
	assert.Equal(t, Month{Year: 2024, Month: time.January}, Month{Year: 2023, Month: time.December}.Next())
	assert.Equal(t, Month{Year: 2022, Month: time.November}, m.AddMonths(-7))
	assert.True(t, m.Before(m.Next()))
	assert.False(t, m.Before(m))

	_, err = ParseMonth("June 2023")
	assert.Error(t, err)
	_, err = ParseMonth("0000-03")
	assert.Error(t, err)
}

func TestMonthAddMonthsAcrossYearZero(t *testing.T) {
	m := Month{Year: 0, Month: time.March}

	assert.Equal(t, Month{Year: -1, Month: time.April}, m.AddMonths(-11))
	assert.Equal(t, Month{Year: -1, Month: time.December}, m.AddMonths(-3))
	assert.Equal(t, Month{Year: 0, Month: time.January}, m.AddMonths(-2))

	for _, got := range MonthRange(m.AddMonths(-11), m) {
		assert.True(t, got.Month >= time.January && got.Month <= time.December, "month out of range: %+v", got)
		assert.Len(t, got.Short(), 3)
	}
}

func TestMonthsBetween(t *testing.T) {
	from := Month{Year: 2022, Month: time.November}
	to := Month{Year: 2023, Month: time.February}

	assert.Equal(t, 4, MonthsBetween(from, to))
	assert.Equal(t, 1, MonthsBetween(from, from))
	assert.Equal(t, 0, MonthsBetween(to, from))
	assert.Equal(t, 120000, MonthsBetween(Month{Year: 0, Month: time.January}, Month{Year: 9999, Month: time.December}))
}

func TestMonthRange(t *testing.T) {
	from := Month{Year: 2022, Month: time.November}
	to := Month{Year: 2023, Month: time.February}

	months := MonthRange(from, to)

	require.Len(t, months, 4)
	assert.Equal(t, "2022-11", months[0].String())
	assert.Equal(t, "2023-02", months[3].String())
	assert.Empty(t, MonthRange(to, from))
	assert.Len(t, MonthRange(from, from), 1)
}

func TestLastMonths(t *testing.T) {
	months := LastMonths(day(2023, time.March, 15), 12)

	require.Len(t, months, 12)
	assert.Equal(t, "2022-04", months[0].String())
	assert.Equal(t, "2023-03", months[11].String())
	assert.Empty(t, LastMonths(day(2023, time.March, 15), 0))
}

func TestMonthlySeries(t *testing.T) {
	transactions := []models.Transaction{
		dated(models.TransactionTypeIncome, 2500, day(2023, time.June, 1)),
		dated(models.TransactionTypeIncome, 2200, day(2023, time.June, 2)),
		dated(models.TransactionTypeExpense, 550, day(2023, time.June, 5)),
		dated(models.TransactionTypeIncome, 1000, day(2023, time.April, 30)),
		dated(models.TransactionTypeExpense, 300, day(2023, time.August, 1)),
		dated(models.TransactionTypeIncome, 9999, day(2022, time.June, 1)),
		dated(models.TransactionTypeIncome, 50, time.Time{}),
		{Type: models.TransactionType("refund"), Amount: 10, Date: day(2023, time.June, 3)},
	}
	months := MonthRange(Month{2023, time.April}, Month{2023, time.July})

	series := MonthlySeries(transactions, months)

	t.Run("one_point_per_month", func(t *testing.T) {
		require.Len(t, series.Points, len(months))
		for i, m := range months {
			assert.Equal(t, m.String(), series.Points[i].Month)
		}
	})

	t.Run("sums_per_month", func(t *testing.T) {
		assert.Equal(t, MonthlyTotals{Month: "2023-04", Name: "Apr", Income: 1000, Net: 1000}, series.Points[0])
		assert.Equal(t, MonthlyTotals{Month: "2023-05", Name: "May"}, series.Points[1])
		assert.Equal(t, MonthlyTotals{Month: "2023-06", Name: "Jun", Income: 4700, Expenses: 550, Net: 4150}, series.Points[2])
		assert.Equal(t, MonthlyTotals{Month: "2023-07", Name: "Jul"}, series.Points[3])
	})

	t.Run("totals_match_in_range_transactions", func(t *testing.T) {
		var income, expenses int64
		for _, p := range series.Points {
			income += p.Income
			expenses += p.Expenses
		}
		assert.Equal(t, int64(1000+2500+2200), income)
		assert.Equal(t, int64(550), expenses)
	})

	t.Run("flags_undated_and_untyped", func(t *testing.T) {
		assert.Equal(t, 1, series.Unparseable)
		assert.Equal(t, 1, series.UnknownType)
	})

	t.Run("empty_range", func(t *testing.T) {
		assert.Empty(t, MonthlySeries(transactions, nil).Points)
	})

	t.Run("repeated_month_filled_once", func(t *testing.T) {
		june := Month{2023, time.June}
		s := MonthlySeries(transactions, []Month{june, june})

		require.Len(t, s.Points, 2)
		assert.Equal(t, int64(4700), s.Points[0].Income)
		assert.Equal(t, int64(0), s.Points[1].Income)
	})
}
