//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentshop/cart-service/config"
	"github.com/studentshop/cart-service/internal/testutil"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		URI:                            testutil.GetSharedContainerURI(),
		DatabaseName:                   testutil.SanitizeDBName(t.Name()),
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("enabled database wires every component", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))

		require.NotNil(t, components)
		defer func() {
			require.NoError(t, components.DB.Close(ctx))
		}()

		assert.NotNil(t, components.CartSnapshots)
		assert.NotNil(t, components.OrdersRepo)
		assert.NotNil(t, components.ProductsRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.CartsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
		assert.NoError(t, components.DB.HealthCheck(ctx))
	})

	t.Run("starter catalog is seeded", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(t))

		require.NotNil(t, components)
		defer func() {
			require.NoError(t, components.DB.Close(ctx))
		}()

		count, err := components.ProductsRepo.Count(ctx)
		require.NoError(t, err)
		assert.Greater(t, count, int64(0))
	})

	t.Run("disabled database returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
	})
}
