package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemRequest_Validate(t *testing.T) {
	valid := AddItemRequest{
		ProductID: "p1",
		Name:      "Wireless Mouse",
		UnitPrice: decimal.RequireFromString("24.99"),
		Quantity:  1,
	}

	tests := []struct {
		name        string
		mutate      func(*AddItemRequest)
		expectedErr *ValidationError
	}{
		{name: "valid request", mutate: func(r *AddItemRequest) {}},
		{
			name:        "missing product ID",
			mutate:      func(r *AddItemRequest) { r.ProductID = "" },
			expectedErr: ErrMissingProductID,
		},
		{
			name:        "zero quantity",
			mutate:      func(r *AddItemRequest) { r.Quantity = 0 },
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "negative quantity",
			mutate:      func(r *AddItemRequest) { r.Quantity = -2 },
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "negative unit price",
			mutate:      func(r *AddItemRequest) { r.UnitPrice = decimal.NewFromInt(-1) },
			expectedErr: ErrNegativeUnitPrice,
		},
		{
			name:   "zero unit price is allowed",
			mutate: func(r *AddItemRequest) { r.UnitPrice = decimal.Zero },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()

			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.expectedErr, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "quantity", Message: "must be at least 1"}
	assert.Equal(t, "quantity: must be at least 1", err.Error())
}

func TestShippingInfo_Validate(t *testing.T) {
	valid := ShippingInfo{
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@example.com",
		Street:    "12 Ring Road",
		City:      "Accra",
	}

	tests := []struct {
		name          string
		mutate        func(*ShippingInfo)
		expectedField string
	}{
		{name: "valid", mutate: func(s *ShippingInfo) {}},
		{name: "missing first name", mutate: func(s *ShippingInfo) { s.FirstName = "  " }, expectedField: "shipping.first_name"},
		{name: "missing last name", mutate: func(s *ShippingInfo) { s.LastName = "" }, expectedField: "shipping.last_name"},
		{name: "missing email", mutate: func(s *ShippingInfo) { s.Email = "" }, expectedField: "shipping.email"},
		{name: "email without at sign", mutate: func(s *ShippingInfo) { s.Email = "ama.example.com" }, expectedField: "shipping.email"},
		{name: "missing street", mutate: func(s *ShippingInfo) { s.Street = "" }, expectedField: "shipping.street"},
		{name: "missing city", mutate: func(s *ShippingInfo) { s.City = "" }, expectedField: "shipping.city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := s.Validate()

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expectedField, verr.Field)
		})
	}
}

func TestPaymentInfo_Validate(t *testing.T) {
	tests := []struct {
		name          string
		payment       PaymentInfo
		expectedField string
	}{
		{
			name:    "valid mobile money",
			payment: PaymentInfo{Method: "mobile_money", MobileNumber: "+233201234567", Network: "mtn"},
		},
		{
			name:    "valid card",
			payment: PaymentInfo{Method: "card", CardNumber: "4242424242424242", ExpiryDate: "04/27"},
		},
		{
			name:          "mobile money without number",
			payment:       PaymentInfo{Method: "mobile_money"},
			expectedField: "payment.mobile_number",
		},
		{
			name:          "card without number",
			payment:       PaymentInfo{Method: "card", ExpiryDate: "04/27"},
			expectedField: "payment.card_number",
		},
		{
			name:          "card without expiry",
			payment:       PaymentInfo{Method: "card", CardNumber: "4242424242424242"},
			expectedField: "payment.expiry_date",
		},
		{
			name:          "unknown method",
			payment:       PaymentInfo{Method: "barter"},
			expectedField: "payment.method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expectedField, verr.Field)
		})
	}
}

func TestCheckoutRequest_Validate(t *testing.T) {
	// Shipping is deliberately not validated here; only the checkout service
	// knows whether the cart needs it.
	req := CheckoutRequest{
		Payment: PaymentInfo{Method: "mobile_money", MobileNumber: "+233201234567"},
	}
	assert.NoError(t, req.Validate())

	req.Payment.MobileNumber = ""
	assert.Error(t, req.Validate())
}
