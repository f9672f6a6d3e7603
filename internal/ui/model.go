package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/prefs"
)

const toastDuration = 3 * time.Second

// Options configures the dashboard.
type Options struct {
	Context context.Context
	Client  libreria.Backend
	Stores  Stores
	Center  *notify.Center

	ThemeName string
	PrefsPath string

	// RefreshEvery re-loads the visible tab in the background. Zero
	// disables it.
	RefreshEvery time.Duration

	// Clipboard writes a row to the system clipboard. Nil disables the
	// copy action.
	Clipboard func(text string)

	// CacheStale marks the footer when rows were hydrated from the local
	// snapshot database rather than fetched live.
	CacheStale bool

	// CacheUpdatedAt is the age of the newest hydrated snapshot, shown next
	// to the stale marker. Zero hides the age.
	CacheUpdatedAt time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx    context.Context
	panes  []Pane
	stores Stores
	center *notify.Center

	keys      keyMap
	theme     Theme
	prefsPath string
	clipboard func(string)

	tab      int // index into panes; len(panes) is the overview tab
	selected int
	width    int
	height   int
	ready    bool
	showHelp bool

	searching   bool
	searchInput textinput.Model

	modal  *form
	detail *detailView

	toast      *notify.Message
	toastUntil time.Time

	refreshEvery   time.Duration
	lastAuto       time.Time
	cacheStale     bool
	cacheUpdatedAt time.Time
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	center := opts.Center
	if center == nil {
		center = notify.NewCenter()
	}

	input := textinput.New()
	input.Placeholder = "buscar..."
	input.CharLimit = 60
	input.Width = 30

	return Model{
		ctx:            ctx,
		panes:          buildPanes(opts.Client, opts.Stores, center),
		stores:         opts.Stores,
		center:         center,
		keys:           defaultKeyMap(),
		theme:          GetTheme(opts.ThemeName),
		prefsPath:      opts.PrefsPath,
		clipboard:      opts.Clipboard,
		searchInput:    input,
		refreshEvery:   opts.RefreshEvery,
		cacheStale:     opts.CacheStale,
		cacheUpdatedAt: opts.CacheUpdatedAt,
	}
}

// overviewTab is the index of the metrics tab.
func (m Model) overviewTab() int { return len(m.panes) }

func (m Model) currentPane() Pane {
	if m.tab >= len(m.panes) {
		return nil
	}
	return m.panes[m.tab]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadCmd(m.tab),
		tickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case loadedMsg:
		m = m.drainToasts()
		m.clampSelection()
		return m, nil

	case actionDoneMsg:
		m = m.drainToasts()
		return m, nil

	case formResultMsg:
		if m.modal != nil && m.modal.Finish(msg.err) {
			m.modal = nil
		}
		m = m.drainToasts()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.detail != nil {
		return m.detail.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		cmd, closed := m.modal.Update(m.ctx, msg)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.detail != nil {
		switch msg.String() {
		case "esc", "enter", "q":
			m.detail = nil
			return m, nil
		}
		return m, m.detail.Update(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			saved := prefs.Load(m.prefsPath)
			saved.Theme = m.theme.Name
			_ = prefs.Save(m.prefsPath, saved)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tab + 1) % (len(m.panes) + 1))

	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tab + len(m.panes)) % (len(m.panes) + 1))
	}

	if m.tab == m.overviewTab() {
		return m.handleOverviewKey(msg)
	}
	return m.handlePaneKey(msg)
}

func (m Model) handleOverviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Refresh) {
		// Metrics aggregate orders and memberships; refresh both.
		return m, tea.Batch(
			m.refreshPaneCmd(m.findPane("Órdenes")),
			m.refreshPaneCmd(m.findPane("Membresías")),
		)
	}
	return m, nil
}

func (m Model) handlePaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.currentPane()
	view := p.View()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(view.rows)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if p.SetPage(view.page + 1) {
			return m, m.loadCmd(m.tab)
		}
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if p.SetPage(view.page - 1) {
			return m, m.loadCmd(m.tab)
		}
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(view.search)
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if view.search != "" {
			if p.SetSearch("") {
				return m, m.loadCmd(m.tab)
			}
			m.clampSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		p.CycleFilter()
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		if p.NextPageSize() {
			return m, m.loadCmd(m.tab)
		}
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshPaneCmd(m.tab)

	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.selectedKey(view); ok {
			return m, m.toggleCmd(p, id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Advance):
		if id, ok := m.selectedKey(view); ok {
			return m, m.advanceCmd(p, id)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		if f, err := p.Form(0); err == nil {
			m.modal = f
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.selectedKey(view); ok {
			if f, err := p.Form(id); err == nil {
				m.modal = f
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if id, ok := m.selectedKey(view); ok {
			if lines, err := p.Detail(id); err == nil {
				m.detail = newDetailView(p.Title(), lines, m.height)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if id, ok := m.selectedKey(view); ok && m.clipboard != nil {
			if text, err := p.CopyText(id); err == nil {
				m.clipboard(text)
				m.center.Info("Fila copiada al portapapeles")
				m = m.drainToasts()
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		if m.currentPane().SetSearch(m.searchInput.Value()) {
			return m, m.loadCmd(m.tab)
		}
		m.clampSelection()
		return m, nil

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Client-paginated tabs filter as the operator types; the term never
	// leaves the process. Server tabs wait for enter.
	if p := m.currentPane(); p != nil && p.LiveSearch() {
		p.SetSearch(m.searchInput.Value())
		m.clampSelection()
	}
	return m, cmd
}

func (m Model) switchTab(tab int) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.selected = 0
	if tab == m.overviewTab() {
		return m, nil
	}
	if !m.panes[tab].View().initialized {
		return m, m.loadCmd(tab)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m = m.drainToasts()
	if m.toast != nil && now.After(m.toastUntil) {
		m.toast = nil
	}

	cmds := []tea.Cmd{tickCmd()}
	if m.refreshEvery > 0 && now.Sub(m.lastAuto) >= m.refreshEvery && m.tab < len(m.panes) {
		m.lastAuto = now
		cmds = append(cmds, m.loadCmd(m.tab))
	}
	return m, tea.Batch(cmds...)
}

// drainToasts pulls pending notifications and keeps the newest on screen.
func (m Model) drainToasts() Model {
	pending := m.center.Pending()
	if len(pending) == 0 {
		return m
	}
	last := pending[len(pending)-1]
	m.toast = &last
	m.toastUntil = time.Now().Add(toastDuration)
	return m
}

func (m *Model) clampSelection() {
	if p := m.currentPane(); p != nil {
		if n := len(p.View().rows); m.selected >= n {
			m.selected = n - 1
		}
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) selectedKey(view paneView) (int64, bool) {
	if m.selected < 0 || m.selected >= len(view.rows) {
		return 0, false
	}
	return view.rows[m.selected].key, true
}

func (m Model) findPane(title string) int {
	for i, p := range m.panes {
		if p.Title() == title {
			return i
		}
	}
	return 0
}

// Messages

type tickMsg time.Time

type loadedMsg struct {
	tab int
}

type actionDoneMsg struct{}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadCmd(tab int) tea.Cmd {
	p := m.panes[tab]
	ctx := m.ctx
	return func() tea.Msg {
		p.Load(ctx)
		return loadedMsg{tab: tab}
	}
}

func (m Model) refreshPaneCmd(tab int) tea.Cmd {
	p := m.panes[tab]
	ctx := m.ctx
	return func() tea.Msg {
		p.Refresh(ctx)
		return loadedMsg{tab: tab}
	}
}

func (m Model) toggleCmd(p Pane, key int64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		_ = p.Toggle(ctx, key)
		return actionDoneMsg{}
	}
}

func (m Model) advanceCmd(p Pane, key int64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		_ = p.Advance(ctx, key)
		return actionDoneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
