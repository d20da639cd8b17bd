package repository

import (
	"context"
	"encoding/json"

	"clat_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// DocumentStore persists whole JSON documents by key. Backends are opaque
// to callers: values go in and come out as JSON bytes, with no schema
// validation at this layer.
type DocumentStore interface {
	// Get returns the raw document, or ok=false when the key is absent or
	// the backend is unavailable.
	Get(ctx context.Context, key string) (value []byte, ok bool)
	// Set writes the whole document. Failure is reported, never panics.
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// ReadDoc loads a document into a value of type T, falling back to def on a
// missing key, a parse failure, or an unavailable backend. It never fails.
func ReadDoc[T any](ctx context.Context, store DocumentStore, key string, def T) T {
	raw, ok := store.Get(ctx, key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Log.Warn("discarding corrupt stored document",
			zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// WriteDoc marshals and stores a document. Persistence is best-effort: the
// error is logged here so call sites may ignore it.
func WriteDoc(ctx context.Context, store DocumentStore, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode document", zap.String("key", key), zap.Error(err))
		return err
	}
	if err := store.Set(ctx, key, raw); err != nil {
		logger.Log.Error("failed to persist document", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
