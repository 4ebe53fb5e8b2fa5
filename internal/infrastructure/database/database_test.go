package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskstore/api/internal/infrastructure/config"
)

func testConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, err := New(testConfig())
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	assert.False(t, db.Ready())

	require.NoError(t, db.EnsureSchema(ctx))
	assert.True(t, db.Ready())

	// Running again against an existing schema is a no-op
	require.NoError(t, db.EnsureSchema(ctx))

	// Both tables exist and are queryable
	var count int
	require.NoError(t, db.DB.Get(&count, `SELECT COUNT(*) FROM tasks`))
	assert.Equal(t, 0, count)
	require.NoError(t, db.DB.Get(&count, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 0, count)
}

func TestHealthCheck(t *testing.T) {
	db, err := New(testConfig())
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
	assert.NoError(t, db.Ping())
	assert.NotEmpty(t, db.GetConnectionInfo())
}
