package repository

import (
	"context"
	"time"

	"github.com/studentshop/cart-service/internal/domain/model"
)

// CartSnapshotStore persists cart line snapshots keyed by cart key.
//
// Load returns (nil, nil) for an unknown key and for a snapshot that cannot
// be decoded, so callers always start from an empty cart instead of failing.
type CartSnapshotStore interface {
	// Load returns the persisted lines for the given cart key.
	Load(ctx context.Context, key string) ([]model.CartLine, error)

	// Save replaces the snapshot for the given cart key.
	Save(ctx context.Context, key string, lines []model.CartLine) error

	// Delete removes the snapshot for the given cart key. Deleting a missing
	// snapshot is not an error.
	Delete(ctx context.Context, key string) error
}

// OrdersRepositoryInterface defines order persistence operations.
type OrdersRepositoryInterface interface {
	// Insert stores a new order and returns its assigned ID.
	Insert(ctx context.Context, order *model.Order) (string, error)

	// GetByID retrieves an order by its hex ID.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// GetByNumber retrieves an order by its human-readable order number.
	GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error)

	// List returns the most recent orders, newest first.
	List(ctx context.Context, limit int64) ([]model.Order, error)

	// CountSince returns the number of orders created at or after the given time.
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// ProductsRepositoryInterface defines product catalog operations.
type ProductsRepositoryInterface interface {
	// GetByID retrieves a product by its hex ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetBySlug retrieves a product by its URL slug.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// List returns active products, optionally limited to featured ones.
	List(ctx context.Context, featuredOnly bool, limit int64) ([]model.Product, error)

	// Count returns the total number of products in the catalog.
	Count(ctx context.Context) (int64, error)

	// InsertMany stores a batch of products.
	InsertMany(ctx context.Context, products []model.Product) error
}

// LogsRepositoryInterface defines log persistence operations.
type LogsRepositoryInterface interface {
	// Create stores a single log entry.
	Create(ctx context.Context, entry *model.LogEntry) error

	// CreateMany stores multiple log entries in a single operation.
	CreateMany(ctx context.Context, entries []*model.LogEntry) error

	// Query retrieves log entries matching the given options.
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)

	// Count returns the number of log entries matching the given options.
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
