//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection and collections", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Carts)
		assert.NotNil(t, db.Orders)
		assert.NotNil(t, db.Products)
		assert.NotNil(t, db.Logs)
	})

	t.Run("health check", func(t *testing.T) {
		healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		assert.NoError(t, db.HealthCheck(healthCtx))
	})

	t.Run("set logs TTL", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 30))
	})

	t.Run("set logs TTL is repeatable", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 30))
	})
}
