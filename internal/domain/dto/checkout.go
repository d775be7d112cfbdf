package dto

import "strings"

// ShippingInfo captures the delivery address at checkout.
// Required for carts that contain at least one physical item; ignored for
// digital-only carts.
//
// @Description Shipping address collected during checkout
type ShippingInfo struct {
	FirstName string `json:"first_name" example:"Ama"`
	LastName  string `json:"last_name" example:"Mensah"`
	Email     string `json:"email" example:"ama@example.com"`
	Phone     string `json:"phone,omitempty" example:"+233201234567"`
	Street    string `json:"street" example:"12 Ring Road"`
	City      string `json:"city" example:"Accra"`
	Region    string `json:"region,omitempty" example:"Greater Accra"`
	ZipCode   string `json:"zip_code,omitempty" example:"GA-145"`
} // @name ShippingInfo

// Validate checks that the required shipping fields are present.
func (s *ShippingInfo) Validate() error {
	switch {
	case strings.TrimSpace(s.FirstName) == "":
		return &ValidationError{Field: "shipping.first_name", Message: "is required"}
	case strings.TrimSpace(s.LastName) == "":
		return &ValidationError{Field: "shipping.last_name", Message: "is required"}
	case strings.TrimSpace(s.Email) == "" || !strings.Contains(s.Email, "@"):
		return &ValidationError{Field: "shipping.email", Message: "must be a valid email address"}
	case strings.TrimSpace(s.Street) == "":
		return &ValidationError{Field: "shipping.street", Message: "is required"}
	case strings.TrimSpace(s.City) == "":
		return &ValidationError{Field: "shipping.city", Message: "is required"}
	}
	return nil
}

// PaymentInfo captures the payment method selected at checkout.
// Only the fields for the selected method are required.
//
// @Description Payment method details collected during checkout
type PaymentInfo struct {
	// Method is either "card" or "mobile_money".
	Method string `json:"method" binding:"required" example:"mobile_money"`
	// MobileNumber is required for mobile_money payments.
	MobileNumber string `json:"mobile_number,omitempty" example:"+233201234567"`
	// Network is the mobile money provider, e.g. "mtn".
	Network string `json:"network,omitempty" example:"mtn"`
	// CardNumber is required for card payments.
	CardNumber string `json:"card_number,omitempty" example:"4242424242424242"`
	// ExpiryDate is the card expiry in MM/YY form.
	ExpiryDate string `json:"expiry_date,omitempty" example:"04/27"`
	// CardName is the name on the card.
	CardName string `json:"card_name,omitempty" example:"Ama Mensah"`
} // @name PaymentInfo

// Validate checks the per-method required payment fields.
func (p *PaymentInfo) Validate() error {
	switch p.Method {
	case "card":
		if strings.TrimSpace(p.CardNumber) == "" {
			return &ValidationError{Field: "payment.card_number", Message: "is required for card payments"}
		}
		if strings.TrimSpace(p.ExpiryDate) == "" {
			return &ValidationError{Field: "payment.expiry_date", Message: "is required for card payments"}
		}
	case "mobile_money":
		if strings.TrimSpace(p.MobileNumber) == "" {
			return &ValidationError{Field: "payment.mobile_number", Message: "is required for mobile money payments"}
		}
	default:
		return &ValidationError{Field: "payment.method", Message: "must be card or mobile_money"}
	}
	return nil
}

// CheckoutRequest represents the JSON request body for placing an order.
//
// Shipping is required only when the cart contains physical items; the
// checkout service validates this against the live cart snapshot, not a
// client-supplied flag.
//
// @Description Request to place an order from the current cart
type CheckoutRequest struct {
	Shipping *ShippingInfo `json:"shipping,omitempty"`
	Payment  PaymentInfo   `json:"payment" binding:"required"`
	// Notes are optional free-form customer notes for the order.
	Notes string `json:"notes,omitempty" example:"Leave at the front desk"`
} // @name CheckoutRequest

// Validate checks the payment details. Shipping validation is deferred to
// the checkout service, which knows whether the cart is digital-only.
func (r *CheckoutRequest) Validate() error {
	return r.Payment.Validate()
}
