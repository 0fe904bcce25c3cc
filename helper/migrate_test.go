package helper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidstrainer/helper"
	"kidstrainer/infras/database"
	"kidstrainer/infras/database/databasetest"
)

func TestUpIsIdempotent(t *testing.T) {
	cfg := databasetest.Config(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, helper.Up(cfg))
	}

	conn := database.New(cfg)
	t.Cleanup(func() { _ = conn.Close() })

	var tables []string
	require.NoError(t, conn.DB.SelectContext(context.Background(), &tables,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('trainers', 'parents', 'bookings') ORDER BY name"))

	assert.Equal(t, []string{"bookings", "parents", "trainers"}, tables)
}

func TestUpKeepsData(t *testing.T) {
	conn, cfg := databasetest.New(t)
	ctx := context.Background()

	_, err := conn.DB.ExecContext(ctx, "INSERT INTO trainers (name, sport, credentials, bio, price, email, phone) VALUES ('Jane Doe', 'Tennis', '', '', 30, '', '')")
	require.NoError(t, err)

	require.NoError(t, helper.Up(cfg))

	assert.Equal(t, 1, databasetest.Count(t, conn.DB, "trainers"))
}

func TestDownAndDrop(t *testing.T) {
	cfg := databasetest.Config(t)

	require.NoError(t, helper.Up(cfg))
	require.NoError(t, helper.Down(cfg))
	require.NoError(t, helper.StepUp(cfg))
	require.NoError(t, helper.Drop(cfg))
	require.NoError(t, helper.Up(cfg))
}

func TestRunnerUnknownAction(t *testing.T) {
	cfg := databasetest.Config(t)

	assert.Error(t, helper.Runner(cfg, "sideways"))
}
