package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/search"
	"github.com/atrilhq/atril/internal/state"
)

// renderTable renders the visible page of the current tab as a table.
func (m Model) renderTable() string {
	p := m.currentPane()
	view := p.View()
	styles := m.theme.Styles()
	columns := p.Columns()
	widths := m.columnWidths(columns)

	var b strings.Builder

	// Header row
	var header []string
	for i, col := range columns {
		header = append(header, padRight(col.title, widths[i]))
	}
	b.WriteString(styles.AccentText.Bold(true).Render(strings.Join(header, " ")))
	b.WriteString("\n")

	if len(view.rows) == 0 {
		b.WriteString("\n")
		switch view.phase {
		case state.PhaseLoading:
			b.WriteString(styles.MutedText.Render("  Cargando registros..."))
		case state.PhaseError:
			b.WriteString(styles.DangerText.Render("  " + truncate(view.lastError, m.width-4)))
		default:
			b.WriteString(styles.FaintText.Render("  Sin registros"))
		}
		b.WriteString("\n")
		return b.String()
	}

	for i, r := range view.rows {
		var cells []string
		for c := range columns {
			text := ""
			if c < len(r.cells) {
				text = r.cells[c]
			}
			cells = append(cells, padRight(truncate(text, widths[c]), widths[c]))
		}

		line := strings.Join(cells[:len(cells)-1], " ")
		if i == m.selected {
			b.WriteString(styles.Selected.Render("▸ " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}

		// Status badge rendered last so it keeps its own colors.
		if r.status != "" {
			b.WriteString(" ")
			b.WriteString(styles.StatusStyle(r.status).Render(r.status))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// columnWidths resolves column widths against the terminal width. A single
// zero-width column absorbs the remaining space.
func (m Model) columnWidths(columns []column) []int {
	widths := make([]int, len(columns))
	used := 2 // selection marker
	flex := -1
	for i, col := range columns {
		widths[i] = col.width
		if col.width == 0 {
			flex = i
			continue
		}
		used += col.width + 1
	}
	if flex >= 0 {
		remaining := m.width - used - 1
		if remaining < 12 {
			remaining = 12
		}
		widths[flex] = remaining
	}
	return widths
}

// renderFooter renders the status line and, when present, the active toast.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.searching {
		return styles.Footer.Width(m.width).Render("/" + m.searchInput.View())
	}

	if m.toast != nil {
		text := m.toast.Text
		switch m.toast.Level {
		case notify.LevelError:
			return styles.Footer.Width(m.width).Render(styles.DangerText.Render("✗ " + text))
		case notify.LevelSuccess:
			return styles.Footer.Width(m.width).Render(styles.SuccessText.Render("✓ " + text))
		default:
			return styles.Footer.Width(m.width).Render(styles.InfoText.Render("· " + text))
		}
	}

	if m.tab == m.overviewTab() {
		return styles.Footer.Width(m.width).Render("r refresca métricas · tab cambia pestaña · ? ayuda · q salir")
	}

	view := m.currentPane().View()
	parts := []string{
		fmt.Sprintf("página %d/%d", view.page, maxInt(view.totalPages, 1)),
		fmt.Sprintf("%d registros", view.totalCount),
		fmt.Sprintf("%d por página", view.pageSize),
	}
	if view.filter != search.StatusAll {
		parts = append(parts, "filtro: "+view.filter.Label())
	}
	if view.search != "" {
		parts = append(parts, "búsqueda: "+truncate(view.search, 20))
	}
	switch view.phase {
	case state.PhaseError:
		parts = append(parts, "⚠ datos en caché")
	case state.PhaseLoading:
		parts = append(parts, "cargando...")
	default:
		if m.cacheStale && !view.initialized {
			marker := "⚠ datos en caché"
			if !m.cacheUpdatedAt.IsZero() {
				marker += " (" + humanizeAge(m.cacheUpdatedAt, time.Now()) + ")"
			}
			parts = append(parts, marker)
		}
	}

	return styles.Footer.Width(m.width).Render(strings.Join(parts, " · ") + "   ? ayuda")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
