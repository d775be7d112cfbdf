package dto

import (
	"net/http"
	"time"

	"github.com/studentshop/cart-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (CartView for cart endpoints)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"quantity: must be at least 1"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// CartView is the cart snapshot returned by the cart endpoints: the lines
// with derived aggregates plus an order-total preview. All amounts are
// rounded to 2 decimal places for display.
//
// @Description Cart snapshot with derived totals and order-total preview
type CartView struct {
	CartID    string           `json:"cart_id"`
	Lines     []model.CartLine `json:"lines"`
	ItemCount int              `json:"item_count"`
	Totals    model.OrderTotal `json:"totals"`
} // @name CartView

// NewCartView builds a CartView from a cart snapshot and its computed totals.
func NewCartView(cart model.Cart, totals model.OrderTotal) CartView {
	return CartView{
		CartID:    cart.Key,
		Lines:     cart.Lines,
		ItemCount: cart.ItemCount,
		Totals:    totals.Rounded(),
	}
}

// ProductPresence reports whether a product is in the cart and at what
// quantity. Storefront pages use it to render "in cart" badges without
// fetching the whole cart.
//
// @Description Presence and quantity of a product in the cart
type ProductPresence struct {
	ProductID string `json:"product_id"`
	InCart    bool   `json:"in_cart"`
	Quantity  int    `json:"quantity"`
} // @name ProductPresence

// OrderView is the order representation returned by the checkout and order
// endpoints, with display-rounded totals.
//
// @Description Placed order with rounded totals
type OrderView struct {
	ID              string                 `json:"id,omitempty"`
	OrderNumber     string                 `json:"order_number"`
	CartID          string                 `json:"cart_id"`
	Lines           []model.CartLine       `json:"lines"`
	Totals          model.OrderTotal       `json:"totals"`
	ShippingAddress *model.ShippingAddress `json:"shipping_address,omitempty"`
	PaymentMethod   string                 `json:"payment_method"`
	PaymentStatus   string                 `json:"payment_status"`
	Status          string                 `json:"status"`
	IsDigitalOrder  bool                   `json:"is_digital_order"`
	CreatedAt       time.Time              `json:"created_at"`
} // @name OrderView

// NewOrderView builds an OrderView from a placed order.
func NewOrderView(o model.Order) OrderView {
	v := OrderView{
		OrderNumber:     o.OrderNumber,
		CartID:          o.CartKey,
		Lines:           o.Lines,
		Totals:          o.Totals.Rounded(),
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		Status:          o.Status,
		IsDigitalOrder:  o.IsDigitalOrder,
		CreatedAt:       o.CreatedAt,
	}
	if !o.ID.IsZero() {
		v.ID = o.ID.Hex()
	}
	return v
}
