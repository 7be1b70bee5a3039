package analytics

import "rentfolio/internal/models"

// PortfolioSummary holds the headline numbers of the dashboard.
// Money fields are in the same minor unit as the transaction amounts.
type PortfolioSummary struct {
	TotalProperties int   `json:"total_properties"`
	TotalUnits      int   `json:"total_units"`
	TotalTenants    int   `json:"total_tenants"`
	RentIncome      int64 `json:"rent_income"`
	Expenses        int64 `json:"expenses"`
	NetIncome       int64 `json:"net_income"`
	// OccupancyRate is nil when the portfolio has no units.
	OccupancyRate *float64 `json:"occupancy_rate"`
}

// Summarize computes the portfolio summary. Gross rental income only counts
// income in the Rent category while expenses count every expense category.
// Negative unit counts contribute nothing.
func Summarize(properties []models.Property, tenants []models.Tenant, transactions []models.Transaction) PortfolioSummary {
	s := PortfolioSummary{
		TotalProperties: len(properties),
		TotalTenants:    len(tenants),
	}
	for _, p := range properties {
		s.TotalUnits += nonNegative(p.Units)
	}
	for _, tx := range transactions {
		switch {
		case isRentIncome(tx):
			s.RentIncome += tx.Amount
		case tx.Type == models.TransactionTypeExpense:
			s.Expenses += tx.Amount
		}
	}
	s.NetIncome = s.RentIncome - s.Expenses
	s.OccupancyRate = Percent(int64(s.TotalTenants), int64(s.TotalUnits))
	return s
}
