package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/itinerary-planner/internal/config"
)

func TestNewGormDB_SQLite(t *testing.T) {
	cfg := &config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "trips.db"),
	}

	gormDB, err := NewGormDB(cfg)
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Equal(t, "sqlite", gormDB.Dialector.Name())
}

func TestGormConfig_NowIsUTC(t *testing.T) {
	assert.Equal(t, "UTC", GormConfig().NowFunc().Location().String())
}
