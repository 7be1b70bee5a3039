package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rentfolio/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plain-text password of users created by CreateTestUser.
const TestPassword = "password123"

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProperty creates an apartment complex with the given unit count.
func CreateTestProperty(t *testing.T, db *gorm.DB, units int) *models.Property {
	t.Helper()
	return CreateTestPropertyOfType(t, db, "Apartment Complex", units)
}

// CreateTestPropertyOfType creates a property of the given type.
func CreateTestPropertyOfType(t *testing.T, db *gorm.DB, propertyType string, units int) *models.Property {
	t.Helper()

	n := nextID()
	property := &models.Property{
		Name:    fmt.Sprintf("Test Property %d", n),
		Address: fmt.Sprintf("%d Test Street", n),
		City:    "Testville",
		Type:    propertyType,
		Units:   units,
		Value:   100_000_00,
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}
	return property
}

// CreateTestTenant creates a tenant on a one-year lease starting today.
func CreateTestTenant(t *testing.T, db *gorm.DB, propertyID string, status models.TenantStatus) *models.Tenant {
	t.Helper()

	n := nextID()
	start := time.Now().UTC().Truncate(24 * time.Hour)
	tenant := &models.Tenant{
		Name:       fmt.Sprintf("Test Tenant %d", n),
		Email:      fmt.Sprintf("tenant%d@test.com", n),
		LeaseStart: start,
		LeaseEnd:   start.AddDate(1, 0, 0),
		Rent:       1500_00,
		PropertyID: propertyID,
		Unit:       fmt.Sprintf("%d", n),
		Status:     status,
	}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("failed to create test tenant: %v", err)
	}
	return tenant
}

// CreateTestTransaction creates a transaction booked against propertyID.
func CreateTestTransaction(t *testing.T, db *gorm.DB, propertyID string, txType models.TransactionType, category string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Date:        date,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		PropertyID:  propertyID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestActivity creates a feed entry for propertyID.
func CreateTestActivity(t *testing.T, db *gorm.DB, propertyID string, kind models.ActivityKind, at time.Time) *models.Activity {
	t.Helper()

	activity := &models.Activity{
		Kind:        kind,
		Description: fmt.Sprintf("Test activity %d", nextID()),
		PropertyID:  propertyID,
		OccurredAt:  at,
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}
	return activity
}
