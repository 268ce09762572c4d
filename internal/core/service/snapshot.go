package service

import (
	"context"
	"encoding/json"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

// readSnapshot loads and decodes the JSON value for key into v. A missing
// key and a malformed stored value both report false; storage corruption
// never reaches the caller as an error.
func readSnapshot(ctx context.Context, store ports.KVStore, key string, v any) bool {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// writeSnapshot serializes v and replaces the value under key.
func writeSnapshot(ctx context.Context, store ports.KVStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}
