package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Load reads and decodes the JSON value at key. It never fails the caller:
// a missing key returns fallback silently, while a corrupt record or a
// failing engine logs the problem and still returns fallback. Readers
// always proceed with a safe default.
func Load[T any](s Store, logger *slog.Logger, key string, fallback T) T {
	raw, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Error("kv read failed", "key", key, "error", err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Error("kv record corrupt", "key", key, "error", err)
		return fallback
	}
	return v
}

// Save encodes v as JSON and writes it at key. Unlike Load, write failures
// are propagated so callers can surface "not saved" instead of silently
// dropping data.
func Save[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv: encode %s: %w", key, err)
	}
	if err := s.Set(key, raw); err != nil {
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	return nil
}
