package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

const kvCollection = "kv_entries"

// entry is one key-value document. The storage key doubles as the document
// id, so every write is an upsert by _id.
type entry struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// Store is the MongoDB-backed key-value store, one document per storage key.
type Store struct {
	coll *mongo.Collection
}

// NewStore binds the store to the kv_entries collection of db.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(kvCollection)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc entry
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo get %q: %w", key, err)
	}
	return doc.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		entry{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo set %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo remove %q: %w", key, err)
	}
	return nil
}
