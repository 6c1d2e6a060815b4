package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry wraps a cached value with the instant it was captured. Entries are
// replaced wholesale on every successful refresh.
type Entry[T any] struct {
	Data       T         `json:"data"`
	CapturedAt time.Time `json:"captured_at"`
}

// Put serializes value with the given capture time and writes it under key.
func Put[T any](s Store, key string, value T, capturedAt time.Time) error {
	raw, err := json.Marshal(Entry[T]{Data: value, CapturedAt: capturedAt})
	if err != nil {
		return fmt.Errorf("encoding %s entry: %w", key, err)
	}
	return s.Set(key, string(raw))
}

// Get reads the entry stored under key. A missing or undecodable value
// behaves as a cold cache: ok is false and no error is returned, so a
// corrupt entry can never crash a reader. Storage faults are still
// reported.
func Get[T any](s Store, key string) (Entry[T], bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return Entry[T]{}, false, err
	}
	var e Entry[T]
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return Entry[T]{}, false, nil
	}
	return e, true, nil
}
