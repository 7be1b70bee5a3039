package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	// Database
	DBDriver       string `env:"DB_DRIVER" envDefault:"sqlite"`
	SQLiteDSN      string `env:"SQLITE_DSN" envDefault:"file:rentfolio?mode=memory&cache=shared"`
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USER" envDefault:"rentfolio"`
	DBPassword     string `env:"DB_PASSWORD" envDefault:"rentfolio"`
	DBName         string `env:"DB_NAME" envDefault:"rentfolio"`
	DBSSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	SeedSampleData bool   `env:"SEED_SAMPLE_DATA" envDefault:"true"`

	// JWT
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"fallback-secret-key-for-dev-only"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	// PipelineAPIKey guards endpoints called by schedulers outside the
	// process. Empty disables them.
	PipelineAPIKey string `env:"PIPELINE_API_KEY"`

	// Auth endpoints are limited per client IP.
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT" envDefault:"1"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST" envDefault:"5"`

	// Dashboard
	SnapshotCron        string `env:"SNAPSHOT_CRON" envDefault:"0 0 1 * *"`
	RecentActivityLimit int    `env:"RECENT_ACTIVITY_LIMIT" envDefault:"4"`
	IncomeSeriesMonths  int    `env:"INCOME_SERIES_MONTHS" envDefault:"12"`
}

var appConfig *Config

// Load reads a .env file when present and parses the environment into Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	appConfig = cfg
	return cfg, nil
}

// Get returns the loaded configuration, loading it on first use.
// It falls back to defaults if the environment cannot be parsed.
func Get() *Config {
	if appConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Defaults()
		}
		appConfig = cfg
	}
	return appConfig
}

// Defaults returns a Config populated only from envDefault tags.
func Defaults() *Config {
	cfg := &Config{}
	_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// PostgresDSN returns the key/value DSN used by the gorm postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the URL form used by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.DBDriver, DriverSQLite, DriverPostgres)
	}
	if c.RecentActivityLimit <= 0 {
		return fmt.Errorf("RECENT_ACTIVITY_LIMIT must be positive, got %d", c.RecentActivityLimit)
	}
	if c.IncomeSeriesMonths <= 0 {
		return fmt.Errorf("INCOME_SERIES_MONTHS must be positive, got %d", c.IncomeSeriesMonths)
	}
	return nil
}
