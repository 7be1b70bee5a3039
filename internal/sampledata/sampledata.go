// Package sampledata seeds a demo portfolio into an empty database.
package sampledata

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"rentfolio/internal/logger"
	"rentfolio/internal/models"
)

// Result counts the records inserted by Seed.
type Result struct {
	Properties   int
	Tenants      int
	Transactions int
	Activities   int
}

// Empty reports whether nothing was inserted.
func (r Result) Empty() bool {
	return r == Result{}
}

type property struct {
	key         string
	name        string
	address     string
	city        string
	kind        string
	units       int
	value       int64
	image       string
	description string
}

type tenant struct {
	key         string
	name        string
	email       string
	phone       string
	leaseStart  string
	leaseEnd    string
	rent        int64
	propertyKey string
	unit        string
	status      models.TenantStatus
}

type transaction struct {
	date        string
	amount      int64
	kind        models.TransactionType
	category    string
	description string
	propertyKey string
	tenantKey   string
}

type activity struct {
	kind        models.ActivityKind
	description string
	propertyKey string
	date        string
}

// Amounts are whole dollars; Seed stores cents.
var (
	properties = []property{
		{"p1", "Marina Towers", "123 Marina Blvd", "San Francisco", "Apartment Complex", 24, 5200000,
			"https://images.unsplash.com/photo-1574362848149-11496d93a7c7?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", ""},
		{"p2", "Highland Residences", "456 Highland Ave", "Los Angeles", "Apartment Complex", 16, 3850000,
			"https://images.unsplash.com/photo-1580587771525-78b9dba3b914?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", ""},
		{"p3", "Lakeside Villa", "789 Lake Dr", "Chicago", "Single Family", 1, 950000,
			"https://images.unsplash.com/photo-1576941089067-2de3c901e126?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", ""},
		{"p4", "Downtown Lofts", "321 Main St", "Austin", "Commercial", 8, 2100000,
			"https://images.unsplash.com/photo-1479839672679-a46483c0e7c8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80", ""},
	}

	tenants = []tenant{
		{"t1", "John Smith", "john@example.com", "555-123-4567", "2023-01-01", "2024-01-01", 2500, "p1", "101", models.TenantStatusActive},
		{"t2", "Sarah Johnson", "sarah@example.com", "555-987-6543", "2023-02-15", "2024-02-15", 2200, "p1", "102", models.TenantStatusLate},
		{"t3", "Michael Brown", "michael@example.com", "555-456-7890", "2023-03-01", "2024-03-01", 1950, "p2", "201", models.TenantStatusActive},
		{"t4", "Jessica Lee", "jessica@example.com", "555-789-0123", "2023-04-15", "2024-04-15", 3500, "p3", "301", models.TenantStatusActive},
		{"t5", "David Wilson", "david@example.com", "555-321-6540", "2023-05-01", "2024-05-01", 1800, "p2", "202", models.TenantStatusPending},
	}

	transactions = []transaction{
		{"2023-06-01", 2500, models.TransactionTypeIncome, models.CategoryRent, "Monthly rent payment", "p1", "t1"},
		{"2023-06-02", 2200, models.TransactionTypeIncome, models.CategoryRent, "Monthly rent payment", "p1", "t2"},
		{"2023-06-05", 550, models.TransactionTypeExpense, models.CategoryMaintenance, "Plumbing repair", "p1", ""},
		{"2023-06-10", 1950, models.TransactionTypeIncome, models.CategoryRent, "Monthly rent payment", "p2", "t3"},
		{"2023-06-15", 3500, models.TransactionTypeIncome, models.CategoryRent, "Monthly rent payment", "p3", "t4"},
		{"2023-06-20", 1800, models.TransactionTypeIncome, models.CategoryRent, "Monthly rent payment", "p2", "t5"},
		{"2023-06-25", 1200, models.TransactionTypeExpense, "Utilities", "Electricity and water", "p1", ""},
		{"2023-06-28", 300, models.TransactionTypeExpense, "Insurance", "Property insurance", "p3", ""},
	}

	activities = []activity{
		{models.ActivityLeaseSigned, "New lease signed", "p1", "2023-06-28"},
		{models.ActivityMaintenanceRequest, "Maintenance request", "p2", "2023-06-27"},
		{models.ActivityPaymentReceived, "Rent payment received", "p3", "2023-06-25"},
		{models.ActivityLeaseRenewal, "Lease renewal notice", "p4", "2023-06-23"},
	}
)

// Seed inserts the demo portfolio in one database transaction. It does
// nothing when any property exists, soft-deleted ones included.
func Seed(db *gorm.DB) (Result, error) {
	log := logger.For("sampledata")

	var existing int64
	if err := db.Unscoped().Model(&models.Property{}).Count(&existing).Error; err != nil {
		return Result{}, fmt.Errorf("count properties: %w", err)
	}
	if existing > 0 {
		log.Infow("Skipping sample data, database is not empty", "properties", existing)
		return Result{}, nil
	}

	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		propertyIDs := make(map[string]string, len(properties))
		for _, p := range properties {
			record := models.Property{
				Name:        p.name,
				Address:     p.address,
				City:        p.city,
				Type:        p.kind,
				Units:       p.units,
				Value:       p.value * 100,
				Image:       p.image,
				Description: p.description,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("property %s: %w", p.key, err)
			}
			propertyIDs[p.key] = record.ID
			res.Properties++
		}

		tenantIDs := make(map[string]string, len(tenants))
		for _, t := range tenants {
			record := models.Tenant{
				Name:       t.name,
				Email:      t.email,
				Phone:      t.phone,
				LeaseStart: mustDate(t.leaseStart),
				LeaseEnd:   mustDate(t.leaseEnd),
				Rent:       t.rent * 100,
				PropertyID: propertyIDs[t.propertyKey],
				Unit:       t.unit,
				Status:     t.status,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("tenant %s: %w", t.key, err)
			}
			tenantIDs[t.key] = record.ID
			res.Tenants++
		}

		for i, t := range transactions {
			record := models.Transaction{
				Date:        mustDate(t.date),
				Amount:      t.amount * 100,
				Type:        t.kind,
				Category:    t.category,
				Description: t.description,
				PropertyID:  propertyIDs[t.propertyKey],
			}
			if t.tenantKey != "" {
				id := tenantIDs[t.tenantKey]
				record.TenantID = &id
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("transaction %d: %w", i+1, err)
			}
			res.Transactions++
		}

		for i, a := range activities {
			record := models.Activity{
				Kind:        a.kind,
				Description: a.description,
				PropertyID:  propertyIDs[a.propertyKey],
				OccurredAt:  mustDate(a.date),
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("activity %d: %w", i+1, err)
			}
			res.Activities++
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("seed sample data: %w", err)
	}

	log.Infow("Seeded sample data",
		"properties", res.Properties,
		"tenants", res.Tenants,
		"transactions", res.Transactions,
		"activities", res.Activities,
	)
	return res, nil
}

// mustDate parses the YYYY-MM-DD literals above.
func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
