package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atrilhq/atril/internal/state"
)

// renderHeader renders the top bar: logo, connection state, and the tab
// strip.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render(" atril ")}

	parts = append(parts, m.connectionBadge(styles))

	for i, p := range m.panes {
		parts = append(parts, m.tabLabel(styles, p.Title(), i == m.tab))
	}
	parts = append(parts, m.tabLabel(styles, "Resumen", m.tab == m.overviewTab()))

	bar := strings.Join(parts, "")
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(bar)
}

func (m Model) tabLabel(styles Styles, title string, active bool) string {
	if active {
		return styles.TabActive.Render(title)
	}
	return styles.TabInactive.Render(title)
}

// connectionBadge summarizes the visible tab's backend state.
func (m Model) connectionBadge(styles Styles) string {
	p := m.currentPane()
	if p == nil {
		return styles.TabInactive.Render("")
	}
	view := p.View()
	switch view.phase {
	case state.PhaseError:
		return styles.DangerText.Background(lipgloss.Color(m.theme.Surface)).Render("● sin conexión ")
	case state.PhaseLoading:
		return styles.WarningText.Background(lipgloss.Color(m.theme.Surface)).Render("● cargando ")
	default:
		return styles.SuccessText.Background(lipgloss.Color(m.theme.Surface)).Render("● conectado ")
	}
}

// renderMain renders the full screen: header, content, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.tab == m.overviewTab() {
		b.WriteString(m.renderOverview())
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}
