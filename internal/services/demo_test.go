package services

import (
	"context"
	"testing"

	"github.com/localnerve/pantrydb/internal/config"
	"github.com/localnerve/pantrydb/internal/testutil"
	"github.com/localnerve/pantrydb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDemoNames(t *testing.T) {
	db := testutil.NewTestDB(t)

	names, err := ListDemoNames(db)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, name := range []string{"grace hopper", "alan turing"} {
		rows, err := AddDemoName(db, name)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	}

	names, err = ListDemoNames(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"grace hopper", "alan turing"}, names)

	_, err = AddDemoName(db, "")
	ce, ok := types.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, types.KindValidation, ce.Type)
}

func TestHealthCheck(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := &config.Config{DBType: "sqlite", DBDatabase: ":memory:"}

	result := HealthCheck(context.Background(), cfg, db, zap.NewNop())
	assert.True(t, result.Healthy())
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "sqlite", result.Details["database_type"])
}

func TestHealthCheckUnreachableHost(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := &config.Config{DBType: "postgres", DBHost: "127.0.0.1", DBPort: "1", DBDatabase: "pantry"}

	result := HealthCheck(context.Background(), cfg, db, zap.NewNop())
	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Database)
	assert.Contains(t, result.Details, "database_host_error")
}
