package state

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/search"
)

// Phase is the load state of a collection.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// PageSizes are the selectable page sizes, cycled in order.
var PageSizes = []int{5, 8, 12, 16, 24, 32}

// NextPageSize returns the size after n in the cycle.
func NextPageSize(n int) int {
	for i, size := range PageSizes {
		if size == n {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}

// Query is the cursor handed to a fetch function.
type Query struct {
	Page     int
	PageSize int
	Search   string
}

// Result is one fetched page. Client-paginated fetchers return the whole
// collection and leave the totals zero.
type Result[T any] struct {
	Items      []T
	TotalPages int
	TotalCount int
}

// FetchFunc loads one page (or the full collection) from the backend.
type FetchFunc[T any] func(ctx context.Context, q Query) (Result[T], error)

const defaultMinLoadInterval = 100 * time.Millisecond

// Config parameterizes a Store for one entity type.
type Config[T any] struct {
	// Name labels the store for persistence and display.
	Name string
	// Fetch loads records from the backend.
	Fetch FetchFunc[T]
	// Key extracts the stable identity of a record.
	Key func(T) int64
	// Haystack feeds client-side text matching. Nil disables it.
	Haystack func(T) string
	// Active feeds the status filter. Nil disables it.
	Active func(T) bool
	// ClientPaginated stores hold the whole collection and slice locally.
	ClientPaginated bool
	// PageSize is the initial page size. Zero picks the default.
	PageSize int
	// MinLoadInterval throttles accidental rapid re-entrant loads.
	MinLoadInterval time.Duration
	// Notify receives failure toasts. Nil disables notifications.
	Notify *notify.Center
}

// Store caches one entity collection. All methods are safe for concurrent
// use; Snapshot hands out cloned slices.
type Store[T any] struct {
	mu  sync.Mutex
	cfg Config[T]

	items      []T
	page       int
	pageSize   int
	totalPages int
	totalCount int

	phase       Phase
	lastError   string
	initialized bool
	searchTerm  string
	filter      search.StatusFilter

	lastLoadStart time.Time
	latestSeq     uint64
}

// New constructs an empty store. The first Load populates it.
func New[T any](cfg Config[T]) *Store[T] {
	if cfg.PageSize == 0 {
		cfg.PageSize = PageSizes[1]
	}
	if cfg.MinLoadInterval == 0 {
		cfg.MinLoadInterval = defaultMinLoadInterval
	}
	return &Store[T]{
		cfg:      cfg,
		page:     1,
		pageSize: cfg.PageSize,
	}
}

// Name returns the store's entity label.
func (s *Store[T]) Name() string { return s.cfg.Name }

// ClientPaginated reports whether the store holds the whole collection and
// slices pages locally.
func (s *Store[T]) ClientPaginated() bool { return s.cfg.ClientPaginated }

// Load fetches the current cursor from the backend. It is a no-op while a
// load is in flight or within the throttle window of the previous start.
func (s *Store[T]) Load(ctx context.Context) {
	s.run(ctx, false)
}

// Refresh re-fetches the current cursor regardless of the guards, typically
// right after a write. A load already in flight keeps running but its
// response will carry a stale sequence number and be discarded.
func (s *Store[T]) Refresh(ctx context.Context) {
	s.run(ctx, true)
}

func (s *Store[T]) run(ctx context.Context, force bool) {
	seq, q, ok := s.begin(force)
	if !ok {
		return
	}
	res, err := s.cfg.Fetch(ctx, q)
	s.finish(seq, res, err)
}

// begin flips the store to Loading and issues a load sequence number. ok is
// false when the reentrancy or throttle guard suppressed the call.
func (s *Store[T]) begin(force bool) (seq uint64, q Query, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if !force {
		if s.phase == PhaseLoading {
			return 0, Query{}, false
		}
		if now.Sub(s.lastLoadStart) < s.cfg.MinLoadInterval {
			return 0, Query{}, false
		}
	}

	s.lastLoadStart = now
	s.phase = PhaseLoading
	s.lastError = ""
	s.latestSeq++

	if s.cfg.ClientPaginated {
		// The whole collection comes back in one response.
		return s.latestSeq, Query{}, true
	}
	q = Query{
		Page:     s.page,
		PageSize: s.pageSize,
		Search:   search.Normalize(s.searchTerm),
	}
	return s.latestSeq, q, true
}

// finish applies a load outcome. Responses that are not the latest issued
// sequence are dropped so a slow early request cannot overwrite a newer one.
func (s *Store[T]) finish(seq uint64, res Result[T], err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.latestSeq {
		return
	}
	s.initialized = true

	if err != nil {
		// Keep the stale cache; the UI offers a retry.
		s.phase = PhaseError
		s.lastError = err.Error()
		if s.cfg.Notify != nil {
			s.cfg.Notify.Error(s.lastError)
		}
		return
	}

	s.items = res.Items
	s.phase = PhaseReady
	if s.cfg.ClientPaginated {
		s.totalCount = len(res.Items)
		s.clampPageLocked()
	} else {
		s.totalPages = res.TotalPages
		s.totalCount = res.TotalCount
	}
}

// SetPage moves the cursor. The returned flag tells the caller whether a
// reload is required (server-paginated stores only).
func (s *Store[T]) SetPage(page int) (reload bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}
	if max := s.totalPagesLocked(); max > 0 && page > max {
		page = max
	}
	if page == s.page {
		return false
	}
	s.page = page
	return !s.cfg.ClientPaginated
}

// SetPageSize changes the page size and resets the cursor to page 1.
func (s *Store[T]) SetPageSize(size int) (reload bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if size <= 0 || size == s.pageSize {
		return false
	}
	s.pageSize = size
	s.page = 1
	return !s.cfg.ClientPaginated
}

// SetSearch applies a free-text filter and resets the cursor to page 1.
// Client-paginated stores filter the cache locally; server-paginated stores
// need a reload.
func (s *Store[T]) SetSearch(term string) (reload bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term == s.searchTerm {
		return false
	}
	s.searchTerm = term
	s.page = 1
	return !s.cfg.ClientPaginated
}

// CycleFilter advances the status filter (all → active → inactive).
func (s *Store[T]) CycleFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.filter.Next()
	s.page = 1
}

// Prepend inserts a just-created record at the head of the cache. Totals are
// left alone; the next Refresh reconciles them.
func (s *Store[T]) Prepend(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T{item}, s.items...)
	if s.cfg.ClientPaginated {
		s.totalCount = len(s.items)
	}
}

// Patch applies fn to the record with the given key. Missing keys are a
// no-op.
func (s *Store[T]) Patch(key int64, fn func(*T)) {
	if s.cfg.Key == nil || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.cfg.Key(s.items[i]) == key {
			fn(&s.items[i])
			return
		}
	}
}

// Remove drops the record with the given key. Removing an absent key is a
// no-op.
func (s *Store[T]) Remove(key int64) {
	if s.cfg.Key == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.items[:0]
	for _, item := range s.items {
		if s.cfg.Key(item) != key {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
	if s.cfg.ClientPaginated {
		s.totalCount = len(s.items)
		s.clampPageLocked()
	}
}

// Snapshot is a point-in-time copy of the store for rendering.
type Snapshot[T any] struct {
	// Items are the records visible at the current cursor: the filtered
	// page slice for client-paginated stores, the fetched page otherwise.
	Items       []T
	Page        int
	PageSize    int
	TotalPages  int
	TotalCount  int
	Phase       Phase
	LastError   string
	Initialized bool
	Search      string
	Filter      search.StatusFilter
}

// All returns a clone of every cached record, ignoring pagination, search,
// and the status filter. For server-paginated stores this is only the last
// fetched page.
func (s *Store[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// Snapshot returns a copy of the visible state. The items slice is cloned.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.visibleLocked()
	items := make([]T, len(visible))
	copy(items, visible)

	return Snapshot[T]{
		Items:       items,
		Page:        s.page,
		PageSize:    s.pageSize,
		TotalPages:  s.totalPagesLocked(),
		TotalCount:  s.totalCountLocked(),
		Phase:       s.phase,
		LastError:   s.lastError,
		Initialized: s.initialized,
		Search:      s.searchTerm,
		Filter:      s.filter,
	}
}

// visibleLocked computes the records at the current cursor. Client-paginated
// stores filter the whole cache and slice one page; server pages only pass
// through the status filter.
func (s *Store[T]) visibleLocked() []T {
	filtered := s.filteredLocked()
	if !s.cfg.ClientPaginated {
		return filtered
	}

	start := (s.page - 1) * s.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (s *Store[T]) filteredLocked() []T {
	pred := search.And(
		search.Match(s.filter, s.activeFn()),
		s.textPredicateLocked(),
	)

	filtered := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (s *Store[T]) activeFn() func(T) bool {
	if s.cfg.Active == nil {
		return func(T) bool { return true }
	}
	return s.cfg.Active
}

func (s *Store[T]) textPredicateLocked() search.Predicate[T] {
	// Server-paginated stores already sent the term to the backend.
	if !s.cfg.ClientPaginated || s.cfg.Haystack == nil {
		return search.MatchAll[T]()
	}
	return search.TextMatch(s.searchTerm, s.cfg.Haystack)
}

func (s *Store[T]) totalPagesLocked() int {
	if !s.cfg.ClientPaginated {
		return s.totalPages
	}
	count := len(s.filteredLocked())
	if count == 0 {
		return 0
	}
	return int(math.Ceil(float64(count) / float64(s.pageSize)))
}

func (s *Store[T]) totalCountLocked() int {
	if !s.cfg.ClientPaginated {
		return s.totalCount
	}
	return len(s.filteredLocked())
}

func (s *Store[T]) clampPageLocked() {
	if max := s.totalPagesLocked(); max > 0 && s.page > max {
		s.page = max
	}
	if s.page < 1 {
		s.page = 1
	}
}

// SavedState is the durable subset of a store: cache contents and cursor,
// never the transient phase, error, or initialized latch.
type SavedState[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalCount int `json:"total_count"`
}

// Saved extracts the persistable subset of the store.
func (s *Store[T]) Saved() SavedState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, len(s.items))
	copy(items, s.items)
	return SavedState[T]{
		Items:      items,
		Page:       s.page,
		PageSize:   s.pageSize,
		TotalPages: s.totalPages,
		TotalCount: s.totalCount,
	}
}

// Hydrate seeds the cache from a persisted snapshot. Phase, error, and the
// initialized latch keep their fresh-store defaults so the next Load still
// re-establishes liveness.
func (s *Store[T]) Hydrate(saved SavedState[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = saved.Items
	if saved.Page >= 1 {
		s.page = saved.Page
	}
	if saved.PageSize > 0 {
		s.pageSize = saved.PageSize
	}
	s.totalPages = saved.TotalPages
	s.totalCount = saved.TotalCount
	if s.cfg.ClientPaginated {
		s.totalCount = len(s.items)
		s.clampPageLocked()
	}
}
