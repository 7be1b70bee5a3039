package analytics

import (
	"fmt"
	"time"

	"rentfolio/internal/models"
)

// Month is a calendar month. The zero value is not a valid month.
type Month struct {
	Year  int
	Month time.Month
}

const monthLayout = "2006-01"

// MaxSeriesMonths bounds the length of a requested income series.
const MaxSeriesMonths = 120

// MonthOf returns the calendar month t falls in, in t's own location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	if t.Year() < 1 {
		return Month{}, fmt.Errorf("invalid month %q, year must be at least 0001", s)
	}
	return MonthOf(t), nil
}

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Short returns the three-letter month name used as a chart label.
func (m Month) Short() string {
	return m.Month.String()[:3]
}

// Next returns the following month.
func (m Month) Next() Month {
	return m.AddMonths(1)
}

// AddMonths shifts the month by n, which may be negative.
func (m Month) AddMonths(n int) Month {
	idx := m.Year*12 + int(m.Month-1) + n
	year, month := idx/12, idx%12
	if month < 0 {
		year--
		month += 12
	}
	return Month{Year: year, Month: time.Month(month + 1)}
}

// MonthsBetween counts the months from from to to inclusive. It is zero
// when from is after to.
func MonthsBetween(from, to Month) int {
	n := (to.Year-from.Year)*12 + int(to.Month-from.Month) + 1
	if n < 0 {
		return 0
	}
	return n
}

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// MonthRange returns every month from from to to inclusive, in order.
// It is empty when from is after to.
func MonthRange(from, to Month) []Month {
	if to.Before(from) {
		return []Month{}
	}
	var months []Month
	for m := from; !to.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}

// LastMonths returns the n months ending with the month of now.
func LastMonths(now time.Time, n int) []Month {
	if n <= 0 {
		return []Month{}
	}
	end := MonthOf(now)
	return MonthRange(end.AddMonths(-(n - 1)), end)
}

// MonthlyTotals is one point of the income/expense series.
type MonthlyTotals struct {
	Month    string `json:"month"`
	Name     string `json:"name"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Net      int64  `json:"net"`
}

// IncomeSeries is the income/expense time series over a month range.
// Unparseable counts transactions without a date; UnknownType counts those
// that are neither income nor expense. Neither kind is placed in a month.
type IncomeSeries struct {
	Points      []MonthlyTotals `json:"points"`
	Unparseable int             `json:"unparseable"`
	UnknownType int             `json:"unknown_type"`
}

// MonthlySeries sums income and expense amounts per month of the range.
// The result has exactly one point per requested month, zero-filled, in
// the order given. If a month is listed twice only its first point is
// filled.
func MonthlySeries(transactions []models.Transaction, months []Month) IncomeSeries {
	series := IncomeSeries{Points: make([]MonthlyTotals, len(months))}
	index := make(map[Month]int, len(months))
	for i, m := range months {
		series.Points[i] = MonthlyTotals{Month: m.String(), Name: m.Short()}
		if _, dup := index[m]; !dup {
			index[m] = i
		}
	}

	for _, tx := range transactions {
		if tx.Date.IsZero() {
			series.Unparseable++
			continue
		}
		if !tx.Type.Valid() {
			series.UnknownType++
			continue
		}
		i, ok := index[MonthOf(tx.Date)]
		if !ok {
			continue
		}
		if tx.Type == models.TransactionTypeIncome {
			series.Points[i].Income += tx.Amount
		} else {
			series.Points[i].Expenses += tx.Amount
		}
	}

	for i := range series.Points {
		series.Points[i].Net = series.Points[i].Income - series.Points[i].Expenses
	}
	return series
}
