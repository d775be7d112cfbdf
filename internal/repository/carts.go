package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studentshop/cart-service/internal/domain/model"
)

// cartSnapshotDocument is the stored form of a cart snapshot. The cart key is
// the document ID, so each key holds at most one snapshot.
type cartSnapshotDocument struct {
	Key       string           `bson:"_id"`
	Lines     []model.CartLine `bson:"lines"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// CartsRepository implements CartSnapshotStore backed by MongoDB.
type CartsRepository struct {
	collection *mongo.Collection
}

// NewCartsRepository creates a new MongoDB-backed cart snapshot store.
func NewCartsRepository(db *MongoDB) *CartsRepository {
	return &CartsRepository{collection: db.Carts}
}

// Load returns the persisted lines for the given cart key. A missing or
// undecodable snapshot yields (nil, nil) so the caller starts from an empty
// cart.
func (r *CartsRepository) Load(ctx context.Context, key string) ([]model.CartLine, error) {
	var raw bson.Raw
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	var doc cartSnapshotDocument
	if err := bson.UnmarshalWithRegistry(decimalRegistry(), raw, &doc); err != nil {
		log.Warn().Err(err).Str("cart_key", key).Msg("Discarding undecodable cart snapshot")
		return nil, nil
	}
	return doc.Lines, nil
}

// Save replaces the snapshot for the given cart key.
func (r *CartsRepository) Save(ctx context.Context, key string, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	doc := cartSnapshotDocument{
		Key:       key,
		Lines:     lines,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}

// Delete removes the snapshot for the given cart key.
func (r *CartsRepository) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
