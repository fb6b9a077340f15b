package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/config"
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
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "hotel"
password = "secret"
dbname = "hotel_service"

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "hotel-service"

[pos]
tax_rate = 0.10
currency = "USD"
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "hotel_service", cfg.Database.DBName)
	assert.Equal(t, 0.10, cfg.POS.TaxRate)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.Database.DSN(), "dbname=hotel_service")
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "hotel"
dbname = "hotel_service"
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.NotZero(t, cfg.Server.HTTPPort)
	assert.NotZero(t, cfg.Database.Port)
	assert.Equal(t, 0.10, cfg.POS.TaxRate)
	assert.NotEmpty(t, cfg.Logs.Level)
}

func TestLoad_Fail_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_Fail_InvalidTaxRate(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "hotel"
dbname = "hotel_service"

[pos]
tax_rate = 1.5
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_Fail_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
