// Package i18n provides internationalization support for the cart service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationCartItem indicates an invalid cart item payload.
	ErrKeyValidationCartItem = "error.validation.cart_item"
	// ErrKeyEmptyCart indicates a checkout attempt on an empty cart.
	ErrKeyEmptyCart = "error.empty_cart"
	// ErrKeyOrderNotFound indicates a missing order.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyProductNotFound indicates a missing catalog product.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderPlaced indicates a successfully placed order.
	SuccessKeyOrderPlaced = "success.order_placed"
)
