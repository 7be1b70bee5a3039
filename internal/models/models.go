// Package models defines the GORM-backed records of the rental portfolio.
package models

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Property{},
		&Tenant{},
		&Transaction{},
		&Activity{},
		&SummarySnapshot{},
	}
}
