package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/studentshop/cart-service/internal/domain/model"
	"github.com/studentshop/cart-service/internal/metrics"
	"github.com/studentshop/cart-service/internal/repository"
)

// CartService provides cart operations keyed by cart key. Each key owns one
// CartStore; stores are hydrated lazily from the snapshot store on first use
// and persisted after every mutation.
type CartService interface {
	AddItem(ctx context.Context, key string, line model.CartLine) (model.Cart, error)
	RemoveItem(ctx context.Context, key, lineID string) (model.Cart, error)
	UpdateQuantity(ctx context.Context, key, lineID string, quantity int) (model.Cart, error)
	Clear(ctx context.Context, key string) (model.Cart, error)
	GetCart(ctx context.Context, key string) (model.Cart, error)
	IsInCart(ctx context.Context, key, productID string) (bool, error)
	ItemQuantity(ctx context.Context, key, productID string) (int, error)
}

// CartServiceImpl implements CartService.
type CartServiceImpl struct {
	mu        sync.Mutex
	stores    map[string]*CartStore
	snapshots repository.CartSnapshotStore
}

// NewCartService creates a new cart service. The snapshot store may be nil,
// in which case carts live in memory only.
func NewCartService(snapshots repository.CartSnapshotStore) *CartServiceImpl {
	return &CartServiceImpl{
		stores:    make(map[string]*CartStore),
		snapshots: snapshots,
	}
}

// store returns the CartStore for the given key, hydrating it from the
// snapshot store on first access. A snapshot that cannot be loaded hydrates
// an empty cart; the failure is logged, not surfaced.
func (s *CartServiceImpl) store(ctx context.Context, key string) *CartStore {
	s.mu.Lock()
	if st, ok := s.stores[key]; ok {
		s.mu.Unlock()
		return st
	}
	s.mu.Unlock()

	var lines []model.CartLine
	if s.snapshots != nil {
		loaded, err := s.snapshots.Load(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("cart_key", key).Msg("Failed to load cart snapshot, starting empty")
			metrics.RecordSnapshotOperation("load", "error")
		} else {
			lines = loaded
			metrics.RecordSnapshotOperation("load", "success")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have hydrated the same key concurrently.
	if st, ok := s.stores[key]; ok {
		return st
	}
	st := NewCartStore(key, lines)
	s.stores[key] = st
	return st
}

// persist writes the cart snapshot after a mutation. Failures are logged and
// counted but never surfaced; the in-memory cart remains authoritative.
func (s *CartServiceImpl) persist(ctx context.Context, cart model.Cart) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, cart.Key, cart.Lines); err != nil {
		log.Error().Err(err).Str("cart_key", cart.Key).Msg("Failed to persist cart snapshot")
		metrics.RecordSnapshotOperation("save", "error")
		return
	}
	metrics.RecordSnapshotOperation("save", "success")
}

// AddItem adds a line to the cart, merging by product ID.
func (s *CartServiceImpl) AddItem(ctx context.Context, key string, line model.CartLine) (model.Cart, error) {
	cart := s.store(ctx, key).AddItem(line)
	s.persist(ctx, cart)
	metrics.RecordCartMutation("add_item", "success")
	return cart, nil
}

// RemoveItem removes the line with the given line ID.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, key, lineID string) (model.Cart, error) {
	cart := s.store(ctx, key).RemoveItem(lineID)
	s.persist(ctx, cart)
	metrics.RecordCartMutation("remove_item", "success")
	return cart, nil
}

// UpdateQuantity sets a line's quantity; below 1 removes the line.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, key, lineID string, quantity int) (model.Cart, error) {
	cart := s.store(ctx, key).UpdateQuantity(lineID, quantity)
	s.persist(ctx, cart)
	metrics.RecordCartMutation("update_quantity", "success")
	return cart, nil
}

// Clear removes all lines from the cart and deletes its snapshot.
func (s *CartServiceImpl) Clear(ctx context.Context, key string) (model.Cart, error) {
	cart := s.store(ctx, key).Clear()
	if s.snapshots != nil {
		if err := s.snapshots.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("cart_key", key).Msg("Failed to delete cart snapshot")
			metrics.RecordSnapshotOperation("delete", "error")
		} else {
			metrics.RecordSnapshotOperation("delete", "success")
		}
	}
	metrics.RecordCartMutation("clear", "success")
	return cart, nil
}

// GetCart returns the current cart snapshot.
func (s *CartServiceImpl) GetCart(ctx context.Context, key string) (model.Cart, error) {
	return s.store(ctx, key).Snapshot(), nil
}

// IsInCart reports whether the cart holds a line for the given product.
func (s *CartServiceImpl) IsInCart(ctx context.Context, key, productID string) (bool, error) {
	return s.store(ctx, key).IsInCart(productID), nil
}

// ItemQuantity returns the quantity held for the given product, 0 if absent.
func (s *CartServiceImpl) ItemQuantity(ctx context.Context, key, productID string) (int, error) {
	return s.store(ctx, key).ItemQuantity(productID), nil
}
