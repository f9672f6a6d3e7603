// Package cache defines the durable snapshot store that lets entity screens
// paint cached data immediately after a restart. Only the persistable subset
// of a collection store is written; transient load state never reaches disk.
package cache

import (
	"encoding/json"
	"time"

	"github.com/atrilhq/atril/internal/state"
)

// Entry is one persisted collection snapshot. Items holds the records as raw
// JSON so the store stays ignorant of entity types.
type Entry struct {
	Items      json.RawMessage
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int
	UpdatedAt  time.Time
}

// Info summarizes a persisted entry for display.
type Info struct {
	Entity    string
	Bytes     int
	UpdatedAt time.Time
}

// Snapshots manages persisted collection snapshots keyed by entity name.
type Snapshots interface {
	// Load retrieves an entity's snapshot, or nil when none is stored.
	Load(entity string) (*Entry, error)

	// Save stores or replaces an entity's snapshot.
	Save(entity string, e Entry) error

	// Entries lists the stored snapshots.
	Entries() ([]Info, error)

	// Clear removes every snapshot.
	Clear() error

	// Close releases the underlying resources.
	Close() error
}

// Encode converts a store's saved state into a persistable entry.
func Encode[T any](saved state.SavedState[T]) (Entry, error) {
	raw, err := json.Marshal(saved.Items)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Items:      raw,
		Page:       saved.Page,
		PageSize:   saved.PageSize,
		TotalPages: saved.TotalPages,
		TotalCount: saved.TotalCount,
	}, nil
}

// Decode converts a persisted entry back into a store's saved state.
func Decode[T any](e Entry) (state.SavedState[T], error) {
	var items []T
	if len(e.Items) > 0 {
		if err := json.Unmarshal(e.Items, &items); err != nil {
			return state.SavedState[T]{}, err
		}
	}
	return state.SavedState[T]{
		Items:      items,
		Page:       e.Page,
		PageSize:   e.PageSize,
		TotalPages: e.TotalPages,
		TotalCount: e.TotalCount,
	}, nil
}
