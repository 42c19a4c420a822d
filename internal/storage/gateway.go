// Package storage is the persistence gateway: a best-effort local key-value
// store holding the two persisted records (expense list and settings) as
// JSON. Reads fall back to a caller-supplied default on any failure; writes
// log and no-op on failure. In-memory state is the source of truth for the
// running session, so nothing here ever surfaces an error to the user.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// The two logical record keys. The names match the original persisted shape
// so an existing data directory keeps working across versions.
const (
	KeyExpenses = "et_expenses"
	KeySettings = "et_settings"
)

// ErrNotFound is returned by Gateway.Get for an absent key. Absence is a
// valid state (first run), not a failure.
var ErrNotFound = errors.New("record not found")

// Gateway is a byte-level key-value store. Implementations: file, sqlite.
type Gateway interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Load reads and decodes the record for key, returning fallback when the key
// is absent, unreadable, or fails to decode. No error escapes.
func Load[T any](ctx context.Context, g Gateway, key string, fallback T) T {
	raw, err := g.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.WarnContext(ctx, "Record read failed, using default", "key", key, "error", err)
		}
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.WarnContext(ctx, "Record is malformed, using default", "key", key, "error", err)
		return fallback
	}
	return v
}

// Save encodes and writes the record for key. Failures are logged and
// swallowed; the triggering operation completes as if the write succeeded.
func Save[T any](ctx context.Context, g Gateway, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "Record encode failed", "key", key, "error", err)
		return
	}
	if err := g.Put(ctx, key, raw); err != nil {
		slog.ErrorContext(ctx, "Record write failed", "key", key, "error", err)
	}
}
