package testutil_test

import (
	"testing"
	"time"

	"rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "properties", "tenants", "transactions", "activities", "summary_snapshots"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestProperty(t, first, 3)

	var count int64
	second.Model(&models.Property{}).Count(&count)
	if count != 0 {
		t.Errorf("expected second database to be empty, found %d properties", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	property := testutil.CreateTestProperty(t, db, 12)
	if property.Units != 12 {
		t.Errorf("expected 12 units, got %d", property.Units)
	}

	tenant := testutil.CreateTestTenant(t, db, property.ID, models.TenantStatusLate)
	if tenant.PropertyID != property.ID {
		t.Errorf("expected tenant on property %s, got %s", property.ID, tenant.PropertyID)
	}

	tx := testutil.CreateTestTransaction(t, db, property.ID, models.TransactionTypeIncome, models.CategoryRent, 1000, time.Now())
	if tx.Amount != 1000 {
		t.Errorf("expected amount 1000, got %d", tx.Amount)
	}

	activity := testutil.CreateTestActivity(t, db, property.ID, models.ActivityOther, time.Now())
	if activity.ID == "" {
		t.Fatal("activity should have an ID")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrPropertyNotFound, "custom message")
	testutil.AssertAppError(t, err, "PROPERTY_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertRate(t *testing.T) {
	rate := 20.8
	testutil.AssertRate(t, &rate, 20.8)
	testutil.AssertNoRate(t, nil)
}

func TestCountActivities(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	property := testutil.CreateTestProperty(t, db, 1)
	testutil.CreateTestActivity(t, db, property.ID, models.ActivityLeaseSigned, time.Now())
	testutil.CreateTestActivity(t, db, property.ID, models.ActivityLeaseSigned, time.Now())
	testutil.CreateTestActivity(t, db, property.ID, models.ActivityOther, time.Now())

	if got := testutil.CountActivities(t, db, models.ActivityLeaseSigned); got != 2 {
		t.Errorf("expected 2 lease activities, got %d", got)
	}
}
