package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.True(t, cfg.SeedSampleData)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, "0 0 1 * *", cfg.SnapshotCron)
	assert.Equal(t, 4, cfg.RecentActivityLimit)
	assert.Equal(t, 12, cfg.IncomeSeriesMonths)
	assert.Empty(t, cfg.PipelineAPIKey)
	assert.NoError(t, cfg.validate())
}

func TestLoad(t *testing.T) {
	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("JWT_EXPIRES_IN", "2h")
		t.Setenv("SEED_SAMPLE_DATA", "false")
		t.Setenv("PIPELINE_API_KEY", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, DriverPostgres, cfg.DBDriver)
		assert.Equal(t, 2*time.Hour, cfg.JWTExpiresIn)
		assert.False(t, cfg.SeedSampleData)
		assert.Equal(t, "secret", cfg.PipelineAPIKey)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")

		_, err := Load()
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("rejects non-positive windows", func(t *testing.T) {
		t.Setenv("INCOME_SERIES_MONTHS", "0")

		_, err := Load()
		assert.ErrorContains(t, err, "INCOME_SERIES_MONTHS")
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		t.Setenv("JWT_EXPIRES_IN", "forever")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDSNs(t *testing.T) {
	cfg := Defaults()
	cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName = "db", "5433", "u", "p", "rent"

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=rent sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, "postgres://u:p@db:5433/rent?sslmode=disable", cfg.PostgresURL())
}
