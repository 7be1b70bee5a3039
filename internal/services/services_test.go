package services

import (
	"gorm.io/gorm"

	"rentfolio/internal/logger"
)

func init() {
	logger.Init("test")
}

// stack wires every record service against one database.
type stack struct {
	activities   ActivityServicer
	properties   PropertyServicer
	tenants      TenantServicer
	transactions TransactionServicer
	dashboard    DashboardServicer
	snapshots    SnapshotServicer
}

func newStack(db *gorm.DB) stack {
	activities := NewActivityService(db)
	properties := NewPropertyService(db, activities)
	tenants := NewTenantService(db, properties, activities)
	transactions := NewTransactionService(db, properties, tenants, activities)
	dashboard := NewDashboardService(properties, tenants, transactions, activities, DashboardOptions{IncomeMonths: 12, RecentLimit: 4})
	return stack{
		activities:   activities,
		properties:   properties,
		tenants:      tenants,
		transactions: transactions,
		dashboard:    dashboard,
		snapshots:    NewSnapshotService(db, dashboard),
	}
}
