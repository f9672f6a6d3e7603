package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField describes one input of a record form.
type formField struct {
	label       string
	placeholder string
	value       string
}

// form is the create/edit modal. Submission runs in a tea.Cmd; a failed
// submit leaves the modal open with the error shown, so the operator can
// correct the fields instead of losing them.
type form struct {
	title   string
	labels  []string
	inputs  []textinput.Model
	focus   int
	errMsg  string
	waiting bool
	submit  func(ctx context.Context, values []string) error
}

func newForm(title string, fields []formField, submit func(ctx context.Context, values []string) error) *form {
	labels := make([]string, len(fields))
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.SetValue(f.value)
		in.CharLimit = 120
		in.Width = 40
		labels[i] = f.label
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return &form{
		title:  title,
		labels: labels,
		inputs: inputs,
		submit: submit,
	}
}

// values returns the trimmed field contents in declaration order.
func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}

// formResultMsg reports the outcome of a form submission.
type formResultMsg struct {
	err error
}

// Update handles a key press while the modal is open. It returns a command
// to run and whether the modal closed.
func (f *form) Update(ctx context.Context, msg tea.KeyMsg) (tea.Cmd, bool) {
	if f.waiting {
		return nil, false
	}

	switch msg.String() {
	case "esc":
		return nil, true

	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return nil, false

	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
		return nil, false

	case "enter":
		f.waiting = true
		f.errMsg = ""
		values := f.values()
		submit := f.submit
		return func() tea.Msg {
			return formResultMsg{err: submit(ctx, values)}
		}, false
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, false
}

// Finish applies a submission result. A nil error closes the modal.
func (f *form) Finish(err error) (closed bool) {
	f.waiting = false
	if err != nil {
		f.errMsg = err.Error()
		return false
	}
	return true
}

func (f *form) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

// View renders the modal centered over the given area.
func (f *form) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(f.title))
	b.WriteString("\n\n")

	for i := range f.inputs {
		label := styles.MutedText.Render(padRight(f.labels[i], 14))
		b.WriteString(label)
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case f.waiting:
		b.WriteString(styles.WarningText.Render("Guardando..."))
	case f.errMsg != "":
		b.WriteString(styles.DangerText.Render(truncate(f.errMsg, 56)))
	default:
		b.WriteString(styles.FaintText.Render("enter guarda · esc cancela"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(60)

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
