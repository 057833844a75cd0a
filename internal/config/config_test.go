package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDBConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, 5432, cfg.Port)
	assert.Contains(t, cfg.DSN(), "dbname=itinerary_db")
}

func TestLoadDBConfig_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/trips.db")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "/tmp/trips.db", cfg.SQLitePath)
}

func TestLoadDBConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadDBConfig()
	require.Error(t, err)
}

func TestLoadDBConfig_BadPortFallsBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PORT", "not-a-port")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Port)
}

func TestLoadServerConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadServerConfig()
	require.Error(t, err)
}

func TestLoadServerConfig_CORSOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ITINERARY_TEST_KEY=from-file\n"), 0o600))
	t.Setenv("ITINERARY_TEST_KEY", "")
	os.Unsetenv("ITINERARY_TEST_KEY")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("ITINERARY_TEST_KEY"))

	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}
