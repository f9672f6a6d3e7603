package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navegación",
			items: []helpItem{
				{"tab", "Siguiente pestaña"},
				{"shift+tab", "Pestaña anterior"},
				{"j/k", "Bajar / subir"},
				{"h/l", "Página anterior / siguiente"},
			},
		},
		{
			title: "Colección",
			items: []helpItem{
				{"/", "Buscar (filtra al escribir; enter en pestañas remotas)"},
				{"f", "Filtro de estado"},
				{"s", "Tamaño de página"},
				{"r", "Refrescar desde el servidor"},
			},
		},
		{
			title: "Registro",
			items: []helpItem{
				{"enter", "Ver detalle (j/k desplaza, esc cierra)"},
				{"t", "Activar / desactivar"},
				{"a", "Avanzar estado de orden"},
				{"n", "Nuevo registro"},
				{"e", "Editar registro"},
				{"y", "Copiar fila"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cambiar tema"},
				{"?", "Ayuda"},
				{"q/ctrl+c", "Salir"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Atajos de teclado"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
