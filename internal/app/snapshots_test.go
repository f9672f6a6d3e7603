package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atrilhq/atril/internal/cache"
	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/state"
)

// memSnapshots is an in-memory cache.Snapshots for tests.
type memSnapshots struct {
	entries map[string]cache.Entry
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{entries: make(map[string]cache.Entry)}
}

func (m *memSnapshots) Load(entity string) (*cache.Entry, error) {
	e, ok := m.entries[entity]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memSnapshots) Save(entity string, e cache.Entry) error {
	e.UpdatedAt = time.Now()
	m.entries[entity] = e
	return nil
}

func (m *memSnapshots) Entries() ([]cache.Info, error) {
	out := make([]cache.Info, 0, len(m.entries))
	for entity, e := range m.entries {
		out = append(out, cache.Info{Entity: entity, Bytes: len(e.Items), UpdatedAt: e.UpdatedAt})
	}
	return out, nil
}

func (m *memSnapshots) Clear() error {
	m.entries = make(map[string]cache.Entry)
	return nil
}

func (m *memSnapshots) Close() error { return nil }

// stubBackend panics on any call; store fetches never run in these tests.
type stubBackend struct {
	libreria.Backend
}

func TestPersistThenHydrate_RoundTrip(t *testing.T) {
	center := notify.NewCenter()
	stores := buildStores(stubBackend{}, center, 8)

	stores.Authors.Hydrate(state.SavedState[libreria.Author]{
		Items: []libreria.Author{
			{ID: 1, Name: "Jorge Luis Borges", Nationality: "Argentina", Active: true},
			{ID: 2, Name: "Gabriela Mistral", Nationality: "Chile", Active: true},
		},
		Page:       1,
		PageSize:   8,
		TotalPages: 1,
		TotalCount: 2,
	})
	stores.Orders.Hydrate(state.SavedState[libreria.Order]{
		Items:      []libreria.Order{{ID: 7, Customer: "María Fernández", Status: "pagado", Total: 320}},
		Page:       3,
		PageSize:   8,
		TotalPages: 5,
		TotalCount: 37,
	})

	db := newMemSnapshots()
	if err := persistStores(db, stores); err != nil {
		t.Fatalf("persistStores returned error: %v", err)
	}

	fresh := buildStores(stubBackend{}, center, 8)
	newest := hydrateStores(db, fresh)
	if newest.IsZero() {
		t.Fatal("hydrateStores must report the newest snapshot time")
	}

	authors := fresh.Authors.Snapshot()
	if len(authors.Items) != 2 || authors.Items[0].Name != "Jorge Luis Borges" {
		t.Fatalf("authors after round trip = %+v", authors.Items)
	}
	if authors.Initialized {
		t.Fatal("hydration must not mark the store initialized")
	}
	if authors.Phase != state.PhaseIdle {
		t.Fatalf("phase after hydration = %v, want idle", authors.Phase)
	}

	orders := fresh.Orders.Snapshot()
	if orders.Page != 3 || orders.TotalPages != 5 || orders.TotalCount != 37 {
		t.Fatalf("orders cursor = %d/%d count %d, want 3/5 count 37", orders.Page, orders.TotalPages, orders.TotalCount)
	}
}

func TestHydrate_SkipsMissingAndBrokenEntries(t *testing.T) {
	center := notify.NewCenter()
	stores := buildStores(stubBackend{}, center, 8)

	db := newMemSnapshots()
	db.entries[entityAuthors] = cache.Entry{Items: []byte("{not json")}

	// Must not panic and must leave the stores empty.
	if newest := hydrateStores(db, stores); !newest.IsZero() {
		t.Fatalf("newest = %v with nothing hydrated, want zero", newest)
	}

	if n := len(stores.Authors.Snapshot().Items); n != 0 {
		t.Fatalf("authors = %d items after broken entry, want 0", n)
	}
	if n := len(stores.Users.Snapshot().Items); n != 0 {
		t.Fatalf("users = %d items with no entry, want 0", n)
	}
}

type failingSnapshots struct {
	*memSnapshots
}

func (f failingSnapshots) Save(entity string, e cache.Entry) error {
	return errors.New("disco lleno")
}

func TestPersist_PropagatesSaveFailure(t *testing.T) {
	center := notify.NewCenter()
	stores := buildStores(stubBackend{}, center, 8)

	err := persistStores(failingSnapshots{newMemSnapshots()}, stores)
	if err == nil {
		t.Fatal("expected persistStores to surface the save failure")
	}
}

func TestBuildStores_ServerPaginatedAdapters(t *testing.T) {
	center := notify.NewCenter()
	backend := &pagedBackend{}
	stores := buildStores(backend, center, 8)

	stores.Users.Load(context.Background())

	snap := stores.Users.Snapshot()
	if backend.lastPage != 1 || backend.lastLimit != 8 {
		t.Fatalf("backend queried with page=%d limit=%d, want 1 and 8", backend.lastPage, backend.lastLimit)
	}
	if snap.TotalPages != 4 || snap.TotalCount != 31 {
		t.Fatalf("totals = %d/%d, want 4 pages of 31", snap.TotalPages, snap.TotalCount)
	}
	if len(snap.Items) != 1 || snap.Items[0].Name != "Ana Torres" {
		t.Fatalf("items = %+v", snap.Items)
	}
}

// pagedBackend serves a single canned users page and records the query.
type pagedBackend struct {
	libreria.Backend
	lastPage  int
	lastLimit int
}

func (b *pagedBackend) ListUsers(ctx context.Context, page, limit int, search string) ([]libreria.User, libreria.PageInfo, error) {
	b.lastPage, b.lastLimit = page, limit
	users := []libreria.User{{ID: 4, Name: "Ana Torres", Email: "ana@libreria.mx", Active: true}}
	return users, libreria.PageInfo{TotalPages: 4, TotalCount: 31}, nil
}
