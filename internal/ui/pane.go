package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/search"
	"github.com/atrilhq/atril/internal/state"
)

// column describes one table column.
type column struct {
	title string
	width int // rune width; 0 takes the remaining space
}

// row is one rendered table line.
type row struct {
	key    int64
	cells  []string
	status string // badge label ("activo", "pendiente", ...); empty for none
}

// paneView is the type-erased snapshot a tab renders from.
type paneView struct {
	rows        []row
	page        int
	pageSize    int
	totalPages  int
	totalCount  int
	phase       state.Phase
	lastError   string
	initialized bool
	search      string
	filter      search.StatusFilter
}

// errUnsupported marks an action the current tab does not offer.
var errUnsupported = errors.New("acción no disponible en esta pestaña")

// Pane erases a collection store's element type for the Model. All methods
// that reach the backend are blocking and run inside tea.Cmd closures.
type Pane interface {
	Title() string
	Columns() []column
	View() paneView

	Load(ctx context.Context)
	Refresh(ctx context.Context)
	SetPage(page int) (reload bool)
	NextPageSize() (reload bool)
	SetSearch(term string) (reload bool)
	LiveSearch() bool
	CycleFilter()

	Toggle(ctx context.Context, key int64) error
	Advance(ctx context.Context, key int64) error
	Form(key int64) (*form, error)
	Detail(key int64) ([]string, error)
	CopyText(key int64) (string, error)
}

// paneConfig binds one entity store to its table layout and write
// operations. Nil operation fields disable the matching action.
type paneConfig[T any] struct {
	title   string
	store   *state.Store[T]
	center  *notify.Center
	columns []column

	key    func(T) int64
	cells  func(T) []string
	status func(T) string

	// Status toggle (authors, categories, topics, customers, users,
	// memberships).
	isActive  func(T) bool
	setActive func(*T, bool)
	toggle    func(ctx context.Context, id int64, active bool) error

	// Fulfillment advance (orders).
	nextStatus func(T) string
	setStatus  func(*T, string)
	advance    func(ctx context.Context, id int64, status string) error

	// Create/edit modal. Nil existing builds the create form.
	form func(existing *T) *form

	// Detail lines for the record view. Nil falls back to the table cells.
	detail func(T) []string
}

type pane[T any] struct {
	cfg paneConfig[T]
}

func newPane[T any](cfg paneConfig[T]) *pane[T] {
	return &pane[T]{cfg: cfg}
}

func (p *pane[T]) Title() string     { return p.cfg.title }
func (p *pane[T]) Columns() []column { return p.cfg.columns }

func (p *pane[T]) View() paneView {
	snap := p.cfg.store.Snapshot()

	rows := make([]row, len(snap.Items))
	for i, item := range snap.Items {
		r := row{key: p.cfg.key(item), cells: p.cfg.cells(item)}
		if p.cfg.status != nil {
			r.status = p.cfg.status(item)
		}
		rows[i] = r
	}

	return paneView{
		rows:        rows,
		page:        snap.Page,
		pageSize:    snap.PageSize,
		totalPages:  snap.TotalPages,
		totalCount:  snap.TotalCount,
		phase:       snap.Phase,
		lastError:   snap.LastError,
		initialized: snap.Initialized,
		search:      snap.Search,
		filter:      snap.Filter,
	}
}

func (p *pane[T]) Load(ctx context.Context)    { p.cfg.store.Load(ctx) }
func (p *pane[T]) Refresh(ctx context.Context) { p.cfg.store.Refresh(ctx) }

func (p *pane[T]) SetPage(page int) bool      { return p.cfg.store.SetPage(page) }
func (p *pane[T]) SetSearch(term string) bool { return p.cfg.store.SetSearch(term) }
func (p *pane[T]) LiveSearch() bool           { return p.cfg.store.ClientPaginated() }
func (p *pane[T]) CycleFilter()               { p.cfg.store.CycleFilter() }

func (p *pane[T]) NextPageSize() bool {
	next := state.NextPageSize(p.cfg.store.Snapshot().PageSize)
	return p.cfg.store.SetPageSize(next)
}

// Toggle flips a record's active flag against the backend, patches the
// cache, and refetches the cursor so totals stay authoritative. Exactly one
// toast fires per outcome.
func (p *pane[T]) Toggle(ctx context.Context, key int64) error {
	if p.cfg.toggle == nil || p.cfg.isActive == nil {
		return errUnsupported
	}
	item, ok := p.find(key)
	if !ok {
		return fmt.Errorf("registro %d no está en caché", key)
	}

	target := !p.cfg.isActive(item)
	if err := p.cfg.toggle(ctx, key, target); err != nil {
		p.cfg.center.Error(err.Error())
		return err
	}

	p.cfg.store.Patch(key, func(it *T) { p.cfg.setActive(it, target) })
	if target {
		p.cfg.center.Success("Registro activado")
	} else {
		p.cfg.center.Success("Registro desactivado")
	}
	p.cfg.store.Refresh(ctx)
	return nil
}

// Advance moves an order one step along the fulfillment chain.
func (p *pane[T]) Advance(ctx context.Context, key int64) error {
	if p.cfg.advance == nil || p.cfg.nextStatus == nil {
		return errUnsupported
	}
	item, ok := p.find(key)
	if !ok {
		return fmt.Errorf("registro %d no está en caché", key)
	}

	next := p.cfg.nextStatus(item)
	current := ""
	if p.cfg.status != nil {
		current = p.cfg.status(item)
	}
	if next == current {
		p.cfg.center.Info("La orden ya está en un estado final")
		return nil
	}

	if err := p.cfg.advance(ctx, key, next); err != nil {
		p.cfg.center.Error(err.Error())
		return err
	}

	p.cfg.store.Patch(key, func(it *T) { p.cfg.setStatus(it, next) })
	p.cfg.center.Success("Orden marcada como " + next)
	p.cfg.store.Refresh(ctx)
	return nil
}

// Form builds the create (key 0) or edit modal for a record.
func (p *pane[T]) Form(key int64) (*form, error) {
	if p.cfg.form == nil {
		return nil, errUnsupported
	}
	if key == 0 {
		return p.cfg.form(nil), nil
	}
	item, ok := p.find(key)
	if !ok {
		return nil, fmt.Errorf("registro %d no está en caché", key)
	}
	return p.cfg.form(&item), nil
}

// Detail renders a record as labeled lines for the detail view. Panes
// without a detail builder fall back to their table columns.
func (p *pane[T]) Detail(key int64) ([]string, error) {
	item, ok := p.find(key)
	if !ok {
		return nil, fmt.Errorf("registro %d no está en caché", key)
	}
	if p.cfg.detail != nil {
		return p.cfg.detail(item), nil
	}
	cells := p.cfg.cells(item)
	lines := make([]string, 0, len(cells))
	for i, col := range p.cfg.columns {
		if i >= len(cells) {
			break
		}
		lines = append(lines, detailLine(col.title, cells[i]))
	}
	if p.cfg.status != nil {
		lines = append(lines, detailLine("Estado", p.cfg.status(item)))
	}
	return lines, nil
}

// CopyText renders a record as a tab-separated line for the clipboard.
func (p *pane[T]) CopyText(key int64) (string, error) {
	item, ok := p.find(key)
	if !ok {
		return "", fmt.Errorf("registro %d no está en caché", key)
	}
	return strings.Join(p.cfg.cells(item), "\t"), nil
}

func (p *pane[T]) find(key int64) (T, bool) {
	for _, item := range p.cfg.store.All() {
		if p.cfg.key(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}
