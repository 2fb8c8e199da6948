package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to a documented env var.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Backend services. Each entity resource lives on a fixed host — the
	// split is historical and preserved as configuration, not convention.
	InsumosBaseURL   string `mapstructure:"INSUMOS_BASE_URL"`   // insumo, categoria-insumo, limite-insumo, alarma-insumo
	ProductosBaseURL string `mapstructure:"PRODUCTOS_BASE_URL"` // producto, categoria-producto, limite-producto, alarma-producto, report
	CoreBaseURL      string `mapstructure:"CORE_BASE_URL"`      // almacen, proveedores, movimiento

	// Redis — async report job queue
	RedisURL string `mapstructure:"REDIS_URL"`

	// HTTP client
	RequestTimeoutSec int `mapstructure:"REQUEST_TIMEOUT_SEC"`

	// Listing
	PageSize int `mapstructure:"PAGE_SIZE"`

	// Reports
	ReportStoragePath string `mapstructure:"REPORT_STORAGE_PATH"`
}

// RequestTimeout returns the configured per-request timeout as a Duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("INSUMOS_BASE_URL", "http://localhost:8083/api")
	viper.SetDefault("PRODUCTOS_BASE_URL", "http://localhost:8084/api")
	viper.SetDefault("CORE_BASE_URL", "http://localhost:8085/api")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REQUEST_TIMEOUT_SEC", 30)
	viper.SetDefault("PAGE_SIZE", 5)
	viper.SetDefault("REPORT_STORAGE_PATH", "/tmp/stockfront/reportes")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
