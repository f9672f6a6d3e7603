package app

import (
	"fmt"
	"time"

	"github.com/atrilhq/atril/internal/cache"
	"github.com/atrilhq/atril/internal/state"
	"github.com/atrilhq/atril/internal/ui"
)

// hydrateStores seeds every store from the snapshot database so tabs paint
// cached rows before their first fetch finishes. Missing or undecodable
// entries are skipped; hydration is best effort. The returned time is the
// newest snapshot applied, for the UI's freshness marker.
func hydrateStores(db cache.Snapshots, st ui.Stores) time.Time {
	var newest time.Time
	for _, at := range []time.Time{
		hydrate(db, entityAuthors, st.Authors),
		hydrate(db, entityCategories, st.Categories),
		hydrate(db, entityTopics, st.Topics),
		hydrate(db, entityCustomers, st.Customers),
		hydrate(db, entityUsers, st.Users),
		hydrate(db, entityOrders, st.Orders),
		hydrate(db, entityMemberships, st.Memberships),
	} {
		if at.After(newest) {
			newest = at
		}
	}
	return newest
}

func hydrate[T any](db cache.Snapshots, entity string, store *state.Store[T]) time.Time {
	entry, err := db.Load(entity)
	if err != nil || entry == nil {
		return time.Time{}
	}
	saved, err := cache.Decode[T](*entry)
	if err != nil {
		return time.Time{}
	}
	store.Hydrate(saved)
	return entry.UpdatedAt
}

// persistStores writes every store's durable subset back to the snapshot
// database. The first failure aborts the walk.
func persistStores(db cache.Snapshots, st ui.Stores) error {
	if err := persist(db, entityAuthors, st.Authors); err != nil {
		return err
	}
	if err := persist(db, entityCategories, st.Categories); err != nil {
		return err
	}
	if err := persist(db, entityTopics, st.Topics); err != nil {
		return err
	}
	if err := persist(db, entityCustomers, st.Customers); err != nil {
		return err
	}
	if err := persist(db, entityUsers, st.Users); err != nil {
		return err
	}
	if err := persist(db, entityOrders, st.Orders); err != nil {
		return err
	}
	return persist(db, entityMemberships, st.Memberships)
}

func persist[T any](db cache.Snapshots, entity string, store *state.Store[T]) error {
	entry, err := cache.Encode(store.Saved())
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", entity, err)
	}
	if err := db.Save(entity, entry); err != nil {
		return fmt.Errorf("save %s snapshot: %w", entity, err)
	}
	return nil
}
