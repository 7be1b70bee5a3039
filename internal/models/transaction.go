package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Conventional transaction categories.
const (
	CategoryRent        = "Rent"
	CategoryMaintenance = "Maintenance"
)

// IncomeCategories and ExpenseCategories are the categories offered per type.
var (
	IncomeCategories  = []string{CategoryRent, "Security Deposit", "Late Fee", "Other Income"}
	ExpenseCategories = []string{CategoryMaintenance, "Utilities", "Insurance", "Property Tax", "Mortgage", "Other Expense"}
)

// CategoriesFor returns the conventional categories for a transaction type.
func CategoriesFor(t TransactionType) []string {
	switch t {
	case TransactionTypeIncome:
		return IncomeCategories
	case TransactionTypeExpense:
		return ExpenseCategories
	}
	return nil
}

// Transaction is a single income or expense booked against a property.
// Amount is in cents and always positive; Type carries the direction.
// PropertyName and TenantName are filled in by listings and are not stored.
type Transaction struct {
	Base
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Type        TransactionType `gorm:"not null;index" json:"type"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `json:"description"`
	PropertyID  string          `gorm:"type:uuid;not null;index" json:"property_id"`
	TenantID    *string         `gorm:"type:uuid" json:"tenant_id,omitempty"`

	PropertyName string `gorm:"-" json:"property_name,omitempty"`
	TenantName   string `gorm:"-" json:"tenant_name,omitempty"`
}
