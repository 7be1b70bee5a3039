package services

import (
	"time"

	"rentfolio/internal/analytics"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(email, password, firstName, lastName string) (*models.User, error)
	Login(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// PropertyInput carries the writable fields of a property.
type PropertyInput struct {
	Name        string
	Address     string
	City        string
	Type        string
	Units       int
	Value       int64
	Image       string
	Description string
	AddedDate   *time.Time
}

// PropertyFilter holds optional filter parameters for listing properties.
type PropertyFilter struct {
	Search string
	Type   string
}

// PropertyServicer defines the contract for property-related business logic.
type PropertyServicer interface {
	CreateProperty(in PropertyInput) (*models.Property, error)
	GetProperties(page pagination.PageRequest, filter PropertyFilter) (*pagination.PageResponse[models.Property], error)
	GetPropertyByID(id string) (*models.Property, error)
	UpdateProperty(id string, in PropertyInput) (*models.Property, error)
	DeleteProperty(id string) error
	AllProperties() ([]models.Property, error)
}

// TenantInput carries the writable fields of a tenant.
type TenantInput struct {
	Name       string
	Email      string
	Phone      string
	LeaseStart time.Time
	LeaseEnd   time.Time
	Rent       int64
	PropertyID string
	Unit       string
	Status     models.TenantStatus
}

// TenantFilter holds optional filter parameters for listing tenants.
type TenantFilter struct {
	Search     string
	Status     *models.TenantStatus
	PropertyID string
}

// TenantServicer defines the contract for tenant-related business logic.
type TenantServicer interface {
	CreateTenant(in TenantInput) (*models.Tenant, error)
	GetTenants(page pagination.PageRequest, filter TenantFilter) (*pagination.PageResponse[models.Tenant], error)
	GetTenantByID(id string) (*models.Tenant, error)
	UpdateTenant(id string, in TenantInput) (*models.Tenant, error)
	DeleteTenant(id string) error
	AllTenants() ([]models.Tenant, error)
}

// TransactionInput carries the writable fields of a transaction.
type TransactionInput struct {
	Date        time.Time
	Amount      int64
	Type        models.TransactionType
	Category    string
	Description string
	PropertyID  string
	TenantID    *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Search     string
	Type       *models.TransactionType
	PropertyID string
	FromDate   *time.Time
	ToDate     *time.Time
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(in TransactionInput) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id string) error
	AllTransactions() ([]models.Transaction, error)
	Categories(transactionType models.TransactionType) ([]string, error)
}

// ActivityServicer defines the contract for the activity feed.
type ActivityServicer interface {
	Record(kind models.ActivityKind, description, propertyID string, at time.Time)
	AllActivities() ([]models.Activity, error)
}

// Overview bundles every dashboard figure in one response.
type Overview struct {
	Summary       analytics.PortfolioSummary   `json:"summary"`
	Trends        analytics.Trends             `json:"trends"`
	Distributions map[string][]analytics.Share `json:"distributions"`
	Income        analytics.IncomeSeries       `json:"income"`
	Activities    []analytics.FeedEntry        `json:"activities"`
	Properties    []analytics.PropertyStats    `json:"properties"`
}

// DashboardServicer defines the contract for dashboard statistics.
type DashboardServicer interface {
	Summary() (*analytics.PortfolioSummary, error)
	Trends(now time.Time) (*analytics.Trends, error)
	Distribution(partition analytics.Partition) ([]analytics.Share, error)
	IncomeSeries(from, to analytics.Month) (*analytics.IncomeSeries, error)
	RecentActivity(limit int) ([]analytics.FeedEntry, error)
	PropertyPerformance() ([]analytics.PropertyStats, error)
	Overview(now time.Time) (*Overview, error)
}

// SnapshotServicer defines the contract for monthly summary snapshots.
type SnapshotServicer interface {
	RecordSnapshot(at time.Time) (*models.SummarySnapshot, error)
	GetSnapshots(from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.SummarySnapshot], error)
}
