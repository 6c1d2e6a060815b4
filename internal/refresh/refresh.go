// Package refresh coordinates cache reads, staleness checks and fetches.
package refresh

import (
	"context"
	"time"

	"github.com/Lotzi-tosafix/New-page/internal/cache"
	"github.com/Lotzi-tosafix/New-page/internal/staleness"
)

// FetchFunc retrieves a fresh value from a domain's provider. One attempt
// per cycle; the next tick is the retry.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Clock supplies the current instant. Injected so tests control time.
type Clock func() time.Time

// Refresher runs the refresh cycle for one data domain.
type Refresher[T any] struct {
	Key    string
	Store  cache.Store
	Policy staleness.Policy
	Fetch  FetchFunc[T]
	Now    Clock
}

// Result is one cycle's outcome. Ok means a value is available, cached or
// freshly fetched. Err may be set alongside an Ok value when the fetch
// failed but the last good value survived.
type Result[T any] struct {
	Value   T
	Ok      bool
	Fetched bool
	Err     error
}

// Cycle runs one refresh pass: read the cache, keep the cached value if
// present, fetch only when the entry is missing or stale, write through on
// success. A failed fetch leaves the cached value and its capture time
// untouched, so stale data is never marked fresh.
func (r *Refresher[T]) Cycle(ctx context.Context) Result[T] {
	var res Result[T]

	entry, ok, err := cache.Get[T](r.Store, r.Key)
	if err != nil {
		res.Err = err
	}
	if ok {
		res.Value = entry.Data
		res.Ok = true
		if !r.Policy(entry.CapturedAt, r.now()) {
			return res
		}
	}

	fresh, err := r.Fetch(ctx)
	if err != nil {
		res.Err = err
		return res
	}

	res.Value = fresh
	res.Ok = true
	res.Fetched = true
	if err := cache.Put(r.Store, r.Key, fresh, r.now()); err != nil {
		res.Err = err
	}
	return res
}

// Cached returns the stored value without touching the network or the
// staleness policy. Display layers call it at startup so a warm cache
// renders immediately while the first cycle runs.
func (r *Refresher[T]) Cached() (T, bool) {
	entry, ok, err := cache.Get[T](r.Store, r.Key)
	if err != nil || !ok {
		var zero T
		return zero, false
	}
	return entry.Data, true
}

func (r *Refresher[T]) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
