package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderTotal is the pricing breakdown derived from a cart snapshot.
// All amounts carry full precision; rounding to 2 decimal places happens at
// the presentation boundary only.
//
// @Description Order pricing breakdown: subtotal, shipping, tax, grand total
// @Example {"subtotal": "200", "shipping_cost": "0", "tax": "25", "grand_total": "225"}
type OrderTotal struct {
	Subtotal     decimal.Decimal `bson:"subtotal" json:"subtotal"`
	ShippingCost decimal.Decimal `bson:"shipping_cost" json:"shipping_cost"`
	Tax          decimal.Decimal `bson:"tax" json:"tax"`
	GrandTotal   decimal.Decimal `bson:"grand_total" json:"grand_total"`
}

// Rounded returns a copy with every amount rounded to 2 decimal places,
// suitable for currency display.
func (t OrderTotal) Rounded() OrderTotal {
	return OrderTotal{
		Subtotal:     t.Subtotal.Round(2),
		ShippingCost: t.ShippingCost.Round(2),
		Tax:          t.Tax.Round(2),
		GrandTotal:   t.GrandTotal.Round(2),
	}
}

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCard        = "card"
	PaymentMethodMobileMoney = "mobile_money"
)

// ShippingAddress is the delivery address captured at checkout.
// Omitted entirely for digital-only orders.
type ShippingAddress struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Street    string `bson:"street" json:"street"`
	City      string `bson:"city" json:"city"`
	Region    string `bson:"region,omitempty" json:"region,omitempty"`
	ZipCode   string `bson:"zip_code,omitempty" json:"zip_code,omitempty"`
}

// Order is a placed order: the cart lines frozen at checkout time plus the
// totals computed for them.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber     string             `bson:"order_number" json:"order_number"`
	CartKey         string             `bson:"cart_key" json:"cart_id"`
	Lines           []CartLine         `bson:"lines" json:"lines"`
	Totals          OrderTotal         `bson:"totals" json:"totals"`
	ShippingAddress *ShippingAddress   `bson:"shipping_address,omitempty" json:"shipping_address,omitempty"`
	PaymentMethod   string             `bson:"payment_method" json:"payment_method"`
	PaymentStatus   string             `bson:"payment_status" json:"payment_status"`
	Status          string             `bson:"status" json:"status"`
	IsDigitalOrder  bool               `bson:"is_digital_order" json:"is_digital_order"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderNumberPrefix starts every human-readable order number. Lookups use it
// to tell order numbers apart from hex IDs.
const OrderNumberPrefix = "ORD"

// NewOrderNumber generates a human-readable order number from a timestamp and
// a per-process sequence value, e.g. ORD202412001.
func NewOrderNumber(t time.Time, seq int) string {
	return fmt.Sprintf("%s%s%03d", OrderNumberPrefix, t.Format("200601"), seq%1000)
}
