// Package databasetest provisions a migrated SQLite store for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"kidstrainer/config"
	"kidstrainer/helper"
	"kidstrainer/infras/database"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Config returns a configuration pointing at a fresh SQLite file under the
// test's temp dir.
func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.MaxRetry = 1
	cfg.DB.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "db.sqlite3")
	cfg.DB.SQLite.BusyTimeoutMs = 5000

	return cfg
}

// New migrates a fresh store and returns a connection to it, closed on cleanup.
func New(t *testing.T) (*database.Connection, *config.Config) {
	t.Helper()

	cfg := Config(t)
	require.NoError(t, helper.Up(cfg))

	conn := database.New(cfg)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn, cfg
}

// Acquire checks out a request-scoped connection released on cleanup.
func Acquire(t *testing.T, conn *database.Connection) *sqlx.Conn {
	t.Helper()

	c, err := conn.Acquire(context.Background())
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Release(c)
	})

	return c
}

// Count returns the number of rows in table.
func Count(t *testing.T, h database.Handle, table string) int {
	t.Helper()

	var count int
	require.NoError(t, h.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM "+table))

	return count
}
