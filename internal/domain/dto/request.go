// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/shopspring/decimal"
)

// AddItemRequest represents the JSON request body for adding a product to a cart.
//
// Quantity must be at least 1 and the unit price must not be negative; both
// are rejected before any cart state changes. Adding a product that is
// already in the cart merges into the existing line instead of creating a
// duplicate.
//
// @Description Request to add a product to the cart
// @Example {"product_id": "prod-101", "name": "Wireless Mouse", "unit_price": "24.99", "quantity": 1, "is_digital": false}
type AddItemRequest struct {
	// ProductID identifies the catalog product being added.
	ProductID string `json:"product_id" binding:"required" example:"prod-101"`
	// Name is the display name captured from the catalog.
	Name string `json:"name" binding:"required" example:"Wireless Mouse"`
	// UnitPrice is the price per unit. Must not be negative.
	UnitPrice decimal.Decimal `json:"unit_price" example:"24.99"`
	// ImageRef is an opaque display token for the product image.
	ImageRef string `json:"image_ref,omitempty" example:"img/mouse.webp"`
	// Quantity is how many units to add. Must be at least 1.
	Quantity int `json:"quantity" binding:"required,gte=1" example:"1" minimum:"1"`
	// IsDigital marks downloadable goods, which are exempt from shipping.
	IsDigital bool `json:"is_digital" example:"false"`
} // @name AddItemRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidQuantity is returned when quantity is below 1.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must be at least 1",
	}
	// ErrNegativeUnitPrice is returned when unit_price is negative.
	ErrNegativeUnitPrice = &ValidationError{
		Field:   "unit_price",
		Message: "must not be negative",
	}
	// ErrMissingProductID is returned when product_id is empty.
	ErrMissingProductID = &ValidationError{
		Field:   "product_id",
		Message: "is required",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *AddItemRequest) Validate() error {
	if r.ProductID == "" {
		return ErrMissingProductID
	}
	if r.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if r.UnitPrice.IsNegative() {
		return ErrNegativeUnitPrice
	}
	return nil
}

// UpdateQuantityRequest represents the JSON request body for changing a line's quantity.
//
// A quantity below 1 removes the line, matching the cart invariant that a
// line never persists at quantity zero.
//
// @Description Request to set the quantity of an existing cart line
// @Example {"quantity": 3}
type UpdateQuantityRequest struct {
	// Quantity is the new quantity for the line. Values below 1 remove the line.
	Quantity int `json:"quantity" example:"3"`
} // @name UpdateQuantityRequest
