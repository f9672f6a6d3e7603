package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	detailWidth     = 64
	detailMaxBody   = 18
	detailLabelPad  = 14
	detailChromeTop = 4 // title, rule, padding
)

// detailView shows one record's full fields inside a scrollable viewport.
// Long bodies (order line items, membership benefits) scroll with j/k.
type detailView struct {
	title string
	lines int
	vp    viewport.Model
}

// detailLine formats one "label: value" row for a detail body.
func detailLine(label, value string) string {
	if value == "" {
		value = "-"
	}
	return padRight(label, detailLabelPad) + value
}

func newDetailView(title string, lines []string, height int) *detailView {
	body := detailMaxBody
	if max := height - detailChromeTop - 4; max > 0 && max < body {
		body = max
	}
	if body < 3 {
		body = 3
	}

	vp := viewport.New(detailWidth-6, body)
	vp.SetContent(strings.Join(lines, "\n"))

	return &detailView{
		title: title,
		lines: len(lines),
		vp:    vp,
	}
}

// Update scrolls the viewport. Closing keys are handled by the Model.
func (d *detailView) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return cmd
}

// View renders the detail modal centered over the given area.
func (d *detailView) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(d.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", detailWidth-8)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(d.vp.View()))
	b.WriteString("\n\n")

	hint := "esc cierra"
	if d.lines > d.vp.Height {
		hint = fmt.Sprintf("j/k desplaza (%d%%) · esc cierra", int(d.vp.ScrollPercent()*100))
	}
	b.WriteString(styles.FaintText.Render(hint))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(detailWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
