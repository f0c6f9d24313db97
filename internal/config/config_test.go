package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 10
write_timeout = 10

[database]
host = "localhost"
port = 5432
user = "hotel"
password = "secret"
dbname = "hotel_booking"
sslmode = "disable"

[sslcommerz]
base_url = "https://sandbox.sslcommerz.com"
store_id = "teststore"
store_password = "testpass"

[payments]
allow_global_fallback = true
currency = "USD"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "USD", cfg.Payments.Currency)
	assert.True(t, cfg.Payments.AllowGlobalFallback)
	assert.Equal(t, 15, cfg.SSLCommerz.Timeout)
	assert.Equal(t,
		"host=localhost port=5432 user=hotel password=secret dbname=hotel_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "hotel_booking"

[metrics]
enabled = true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "BDT", cfg.Payments.Currency)
	assert.False(t, cfg.Payments.AllowGlobalFallback)
}

func TestLoad_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}
