// Package middleware provides HTTP middleware components for the cart service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"

	// CartKeyKey is the context key for the cart key of the current request.
	CartKeyKey ContextKey = "cart_key"
)

// RequestID returns a middleware that ensures each request carries a unique
// ID. A client-supplied X-Request-ID header is honored; otherwise a UUID v4
// is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// GetCartKey retrieves the cart key recorded for the current request, if any.
// Handlers set it so the request logger can attach it to persisted entries.
func GetCartKey(c *gin.Context) string {
	if v, exists := c.Get(string(CartKeyKey)); exists {
		if key, ok := v.(string); ok {
			return key
		}
	}
	return ""
}
