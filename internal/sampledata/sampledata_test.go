package sampledata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentfolio/internal/analytics"
	"rentfolio/internal/logger"
	"rentfolio/internal/models"
	"rentfolio/internal/testutil"
)

func init() {
	logger.Init("test")
}

func TestSeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	res, err := Seed(db)
	require.NoError(t, err)
	assert.Equal(t, Result{Properties: 4, Tenants: 5, Transactions: 8, Activities: 4}, res)

	var props []models.Property
	var tenants []models.Tenant
	var txs []models.Transaction
	require.NoError(t, db.Find(&props).Error)
	require.NoError(t, db.Find(&tenants).Error)
	require.NoError(t, db.Find(&txs).Error)

	summary := analytics.Summarize(props, tenants, txs)
	assert.Equal(t, 49, summary.TotalUnits)
	assert.Equal(t, int64(1195000), summary.RentIncome)
	assert.Equal(t, int64(205000), summary.Expenses)
	assert.Equal(t, int64(990000), summary.NetIncome)
	require.NotNil(t, summary.OccupancyRate)
	assert.Equal(t, 10.2, *summary.OccupancyRate)

	dir := analytics.NewDirectory(props, tenants)
	for _, tn := range tenants {
		assert.NotEqual(t, analytics.UnknownLabel, dir.PropertyName(tn.PropertyID), "tenant %s has a dangling property", tn.Name)
	}
	for _, tx := range txs {
		if tx.TenantID != nil {
			assert.NotEqual(t, analytics.UnknownLabel, dir.TenantName(tx.TenantID))
		}
	}
}

func TestSeed_SkipsNonEmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestProperty(t, db, 3)

	res, err := Seed(db)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	var count int64
	db.Model(&models.Property{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSeed_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	_, err := Seed(db)
	require.NoError(t, err)
	res, err := Seed(db)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}
