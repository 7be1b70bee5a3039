// Package analytics derives the dashboard statistics of a rental portfolio
// from plain property, tenant, transaction and activity records.
//
// Every function is pure: inputs are never mutated, nothing is cached, and
// degenerate input (empty sets, zero denominators, dangling references,
// missing dates) yields a defined value instead of an error or a panic.
package analytics

import (
	"github.com/shopspring/decimal"

	"rentfolio/internal/models"
)

// UnknownLabel replaces names that cannot be resolved and empty group keys.
const UnknownLabel = "Unknown"

// Dataset bundles the record sets most aggregations read from.
type Dataset struct {
	Properties   []models.Property
	Tenants      []models.Tenant
	Transactions []models.Transaction
	Activities   []models.Activity
}

// Percent returns part/whole*100 rounded to one decimal place, half away
// from zero. It returns nil when whole is not positive.
func Percent(part, whole int64) *float64 {
	if whole <= 0 {
		return nil
	}
	v := decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(whole), 1).
		InexactFloat64()
	return &v
}

// Change returns the relative change from previous to current in percent,
// rounded like Percent. It returns nil when previous is zero.
func Change(previous, current int64) *float64 {
	if previous == 0 {
		return nil
	}
	v := decimal.NewFromInt(current - previous).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(previous).Abs(), 1).
		InexactFloat64()
	return &v
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func isRentIncome(tx models.Transaction) bool {
	return tx.Type == models.TransactionTypeIncome && tx.Category == models.CategoryRent
}
