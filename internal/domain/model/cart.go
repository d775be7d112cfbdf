// Package model defines the core domain entities for the cart service.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine represents a single line item in a shopping cart.
//
// LineID is a synthetic per-addition identifier, generated when the line is
// first created. It is the stable identity for removal and quantity updates;
// ProductID is the merge key for repeated adds of the same product.
//
// @Description A single cart line with product reference, unit price, and quantity
// @Example {"line_id": "9f1b1c2e", "product_id": "prod-101", "name": "Wireless Mouse", "unit_price": "24.99", "quantity": 2, "is_digital": false}
type CartLine struct {
	LineID    string          `bson:"line_id" json:"line_id"`
	ProductID string          `bson:"product_id" json:"product_id"`
	Name      string          `bson:"name" json:"name"`
	UnitPrice decimal.Decimal `bson:"unit_price" json:"unit_price"`
	ImageRef  string          `bson:"image_ref,omitempty" json:"image_ref,omitempty"`
	Quantity  int             `bson:"quantity" json:"quantity"`
	IsDigital bool            `bson:"is_digital" json:"is_digital"`
}

// LineTotal returns unit price multiplied by quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewLineID generates a fresh synthetic line identifier.
func NewLineID() string {
	return uuid.NewString()
}

// Cart is a snapshot of a cart: the ordered line collection plus aggregates
// derived from it. ItemCount and Subtotal are always recomputed from the
// lines, never stored independently.
//
// @Description Cart snapshot with derived item count and subtotal
type Cart struct {
	Key       string          `json:"cart_id"`
	Lines     []CartLine      `json:"lines"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// NewCart builds a Cart snapshot from the given lines, deriving the
// aggregates. The lines slice is used as-is; callers hand over ownership.
func NewCart(key string, lines []CartLine) Cart {
	if lines == nil {
		lines = []CartLine{}
	}
	c := Cart{Key: key, Lines: lines, Subtotal: decimal.Zero}
	for _, l := range lines {
		c.ItemCount += l.Quantity
		c.Subtotal = c.Subtotal.Add(l.LineTotal())
	}
	return c
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// HasPhysicalItems reports whether any line is a physical (non-digital) good.
// Digital-only carts skip shipping address collection and never pay shipping.
func (c Cart) HasPhysicalItems() bool {
	for _, l := range c.Lines {
		if !l.IsDigital {
			return true
		}
	}
	return false
}
