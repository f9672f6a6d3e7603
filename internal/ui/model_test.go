package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/state"
)

func testModel(t *testing.T, backend *fakeBackend) (Model, Stores) {
	t.Helper()
	center := notify.NewCenter()
	st := testStores(backend, center)
	m := New(Options{Client: backend, Stores: st, Center: center})
	m.width = 120
	m.height = 40
	m.ready = true
	return m, st
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.handleKey(msg)
	return next.(Model)
}

func typeRunes(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSearch_ClientPaginatedFiltersAsTyped(t *testing.T) {
	backend := &fakeBackend{
		listAuthors: func(ctx context.Context) ([]libreria.Author, error) {
			return testAuthors(), nil
		},
	}
	m, st := testModel(t, backend)
	st.Authors.Load(context.Background())

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.searching {
		t.Fatal("slash must open the search prompt")
	}

	// Each keystroke narrows the list; no enter needed.
	m = typeRunes(t, m, "mistral")
	if !m.searching {
		t.Fatal("typing must keep the prompt open")
	}

	snap := st.Authors.Snapshot()
	if snap.Search != "mistral" {
		t.Fatalf("store search = %q while typing, want mistral", snap.Search)
	}
	if len(snap.Items) != 1 || snap.Items[0].Name != "Gabriela Mistral" {
		t.Fatalf("filtered items = %+v, want only Mistral", snap.Items)
	}
}

func TestSearch_ServerPaginatedWaitsForEnter(t *testing.T) {
	fetches := 0
	backend := &fakeBackend{
		listOrders: func(ctx context.Context, page, limit int, search string) ([]libreria.Order, libreria.PageInfo, error) {
			fetches++
			return nil, libreria.PageInfo{TotalPages: 1}, nil
		},
	}
	m, st := testModel(t, backend)
	m.tab = 5 // Órdenes
	st.Orders.Load(context.Background())
	fetches = 0

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = typeRunes(t, m, "maría")

	if got := st.Orders.Snapshot().Search; got != "" {
		t.Fatalf("store search = %q before enter, want empty", got)
	}
	if fetches != 0 {
		t.Fatalf("typing triggered %d fetches before enter, want 0", fetches)
	}

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.searching {
		t.Fatal("enter must close the prompt")
	}
	if got := st.Orders.Snapshot().Search; got != "maría" {
		t.Fatalf("store search = %q after enter, want maría", got)
	}
	if cmd == nil {
		t.Fatal("enter on a server tab must schedule a reload")
	}
}

func TestFooter_ShowsCacheAgeWhenStale(t *testing.T) {
	backend := &fakeBackend{}
	center := notify.NewCenter()
	st := testStores(backend, center)
	st.Authors.Hydrate(state.SavedState[libreria.Author]{
		Items:      testAuthors(),
		Page:       1,
		PageSize:   8,
		TotalPages: 1,
		TotalCount: 3,
	})
	m := New(Options{
		Client:         backend,
		Stores:         st,
		Center:         center,
		CacheStale:     true,
		CacheUpdatedAt: time.Now().Add(-2 * time.Hour),
	})
	m.width = 120
	m.height = 40
	m.ready = true

	footer := m.renderFooter()
	if !strings.Contains(footer, "datos en caché") {
		t.Fatalf("footer missing stale marker: %q", footer)
	}
	if !strings.Contains(footer, "hace 2h") {
		t.Fatalf("footer missing snapshot age: %q", footer)
	}
}

func TestConfirm_OpensAndClosesDetail(t *testing.T) {
	backend := &fakeBackend{
		listAuthors: func(ctx context.Context) ([]libreria.Author, error) {
			return testAuthors(), nil
		},
	}
	m, st := testModel(t, backend)
	st.Authors.Load(context.Background())

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.detail == nil {
		t.Fatal("enter on a row must open the detail view")
	}
	if m.detail.title != "Autores" {
		t.Fatalf("detail title = %q, want Autores", m.detail.title)
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail != nil {
		t.Fatal("esc must close the detail view")
	}
}
