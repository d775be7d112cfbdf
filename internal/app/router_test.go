//go:build !integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentshop/cart-service/config"
	"github.com/studentshop/cart-service/internal/circuitbreaker"
	"github.com/studentshop/cart-service/internal/domain/model"
)

// stubLoggingService satisfies service.LoggingService without persistence.
type stubLoggingService struct{}

func (stubLoggingService) CreateLog(context.Context, *model.LogEntry) error    { return nil }
func (stubLoggingService) CreateLogs(context.Context, []*model.LogEntry) error { return nil }
func (stubLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return nil, nil
}
func (stubLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func testServerConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			RateLimit:      100,
			CartRateLimit:  60,
			RateWindow:     time.Minute,
			RequestTimeout: 30 * time.Second,
		},
	}
}

func TestInitializeRouter(t *testing.T) {
	services := InitializeServices(config.Config{Cart: config.CartConfig{SnapshotDir: t.TempDir()}}, nil)

	t.Run("without database components", func(t *testing.T) {
		components := InitializeRouter(services, nil, testServerConfig())

		require.NotNil(t, components)
		assert.NotNil(t, components.HealthHandler)
		assert.Nil(t, components.Config.LoggingService)
		assert.NotNil(t, components.Config.CartService)
		assert.NotNil(t, components.Config.Pricing)
		assert.NotNil(t, components.Config.CheckoutService)
		assert.NotNil(t, components.Config.CatalogService)
		assert.True(t, components.Config.EnableIdempotency)
		assert.Equal(t, 100, components.Config.RateLimit)
		assert.Equal(t, 60, components.Config.CartRateLimit)
		assert.Equal(t, 30*time.Second, components.Config.RequestTimeout)
	})

	t.Run("with database components", func(t *testing.T) {
		dbComponents := &DatabaseComponents{LoggingService: stubLoggingService{}}

		components := InitializeRouter(services, dbComponents, testServerConfig())

		require.NotNil(t, components)
		assert.NotNil(t, components.Config.LoggingService)
	})

	t.Run("circuit breakers are registered on the health handler", func(t *testing.T) {
		dbComponents := &DatabaseComponents{
			LoggingService:      stubLoggingService{},
			CartsCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
			LogsCircuitBreaker:  circuitbreaker.New(circuitbreaker.DefaultConfig()),
		}

		components := InitializeRouter(services, dbComponents, testServerConfig())

		router := gin.New()
		components.HealthHandler.Register(router)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Checks map[string]interface{} `json:"checks"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body.Checks, "mongodb_carts_circuit")
		assert.Contains(t, body.Checks, "mongodb_logs_circuit")
	})
}
