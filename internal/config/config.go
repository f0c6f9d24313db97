package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config application configuration loaded from config.toml
type Config struct {
	Server     Server     `toml:"server"`
	Database   Database   `toml:"database"`
	Logs       Logs       `toml:"logs"`
	Metrics    Metrics    `toml:"metrics"`
	SSLCommerz SSLCommerz `toml:"sslcommerz"`
	Payments   Payments   `toml:"payments"`
}

// Server HTTP server settings, timeouts in seconds
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database PostgreSQL connection settings
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the PostgreSQL connection string
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs logging settings
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics prometheus settings
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SSLCommerz payment gateway settings, timeout in seconds
type SSLCommerz struct {
	BaseURL       string `toml:"base_url"`
	StoreID       string `toml:"store_id"`
	StorePassword string `toml:"store_password"`
	Timeout       int    `toml:"timeout"`
	SuccessURL    string `toml:"success_url"`
	FailURL       string `toml:"fail_url"`
	CancelURL     string `toml:"cancel_url"`
}

// Payments payment processing behaviour
type Payments struct {
	// AllowGlobalFallback enables the last-resort reconciliation step that
	// matches a callback to the most recent pending gateway payment
	// system-wide. Risky under concurrent checkouts; see reconcile_payment.
	AllowGlobalFallback bool   `toml:"allow_global_fallback"`
	Currency            string `toml:"currency"`
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Payments.Currency == "" {
		cfg.Payments.Currency = "BDT"
	}
	if cfg.SSLCommerz.Timeout == 0 {
		cfg.SSLCommerz.Timeout = 15
	}

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database host and dbname are required")
	}

	return &cfg, nil
}
