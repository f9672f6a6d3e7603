package app

import (
	"context"
	"time"

	"github.com/atrilhq/atril/internal/state"
	"github.com/atrilhq/atril/internal/ui"
)

const (
	defaultRefreshInterval = 30 * time.Second
	maxBackoff             = 5 * time.Minute
)

// calculateBackoff doubles the interval per consecutive failed sweep,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

// StartRefresher launches a goroutine that re-loads every collection at a
// fixed cadence so cached tabs stay warm while the operator works elsewhere.
// Loads go through the stores' own guards, so a sweep never stacks on top of
// an in-flight load. It returns immediately.
func StartRefresher(ctx context.Context, st ui.Stores, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	go func() {
		failures := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(calculateBackoff(failures, interval)):
			}

			if sweep(ctx, st) {
				failures = 0
			} else {
				failures++
			}
		}
	}()
}

// sweep loads every store once and reports whether all of them ended the
// pass without an error phase.
func sweep(ctx context.Context, st ui.Stores) bool {
	ok := true
	ok = loadOne(ctx, st.Authors) && ok
	ok = loadOne(ctx, st.Categories) && ok
	ok = loadOne(ctx, st.Topics) && ok
	ok = loadOne(ctx, st.Customers) && ok
	ok = loadOne(ctx, st.Users) && ok
	ok = loadOne(ctx, st.Orders) && ok
	ok = loadOne(ctx, st.Memberships) && ok
	return ok
}

func loadOne[T any](ctx context.Context, store *state.Store[T]) bool {
	if store == nil {
		return true
	}
	store.Load(ctx)
	return store.Snapshot().Phase != state.PhaseError
}
