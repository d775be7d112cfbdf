package service

import (
	"sync"

	"github.com/studentshop/cart-service/internal/domain/model"
)

// CartStore is the in-memory line engine for a single cart. All mutations go
// through it; aggregates are derived from the lines on every read, never
// cached. It is safe for concurrent use.
type CartStore struct {
	mu    sync.Mutex
	key   string
	lines []model.CartLine
}

// NewCartStore creates a store for the given cart key, optionally hydrated
// from previously persisted lines.
func NewCartStore(key string, lines []model.CartLine) *CartStore {
	s := &CartStore{key: key}
	if len(lines) > 0 {
		s.lines = make([]model.CartLine, len(lines))
		copy(s.lines, lines)
	}
	return s
}

// Key returns the cart key this store belongs to.
func (s *CartStore) Key() string {
	return s.key
}

// AddItem adds a line to the cart. If a line with the same product ID already
// exists, its quantity is increased instead and the existing line keeps its
// identity and position; the price, name, and flags of the incoming line are
// ignored for merged adds. Returns the resulting cart snapshot.
func (s *CartStore) AddItem(line model.CartLine) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.Quantity < 1 {
		return s.snapshotLocked()
	}

	for i := range s.lines {
		if s.lines[i].ProductID == line.ProductID {
			s.lines[i].Quantity += line.Quantity
			return s.snapshotLocked()
		}
	}

	if line.LineID == "" {
		line.LineID = model.NewLineID()
	}
	s.lines = append(s.lines, line)
	return s.snapshotLocked()
}

// RemoveItem removes the line with the given line ID. Removing an unknown
// line ID is a no-op.
func (s *CartStore) RemoveItem(lineID string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return s.snapshotLocked()
}

// UpdateQuantity sets the quantity of the line with the given line ID.
// A quantity below 1 removes the line. Updating an unknown line ID is a
// no-op.
func (s *CartStore) UpdateQuantity(lineID string, quantity int) model.Cart {
	if quantity < 1 {
		return s.RemoveItem(lineID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	return s.snapshotLocked()
}

// Clear removes all lines from the cart.
func (s *CartStore) Clear() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.snapshotLocked()
}

// IsInCart reports whether any line references the given product ID.
func (s *CartStore) IsInCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return true
		}
	}
	return false
}

// ItemQuantity returns the quantity of the line referencing the given product
// ID, or 0 when no such line exists.
func (s *CartStore) ItemQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return s.lines[i].Quantity
		}
	}
	return 0
}

// Snapshot returns the current cart state with derived aggregates.
func (s *CartStore) Snapshot() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked builds a snapshot copy of the lines. Callers must hold mu.
func (s *CartStore) snapshotLocked() model.Cart {
	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	return model.NewCart(s.key, lines)
}
