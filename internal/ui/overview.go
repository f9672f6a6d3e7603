package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/metrics"
)

// renderOverview renders the aggregate metrics tab from whatever the stores
// currently hold. Counts for server-paginated entities come from the
// server-reported totals; the rest derive from the cached collections.
func (m Model) renderOverview() string {
	styles := m.theme.Styles()
	st := m.stores

	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render("Resumen"))
	b.WriteString("\n\n")

	// Collection sizes
	b.WriteString(styles.MutedText.Render("Colecciones"))
	b.WriteString("\n")
	counts := []struct {
		label string
		total int
	}{
		{"Autores", st.Authors.Snapshot().TotalCount},
		{"Categorías", st.Categories.Snapshot().TotalCount},
		{"Temas", st.Topics.Snapshot().TotalCount},
		{"Clientes", st.Customers.Snapshot().TotalCount},
		{"Usuarios", st.Users.Snapshot().TotalCount},
		{"Órdenes", st.Orders.Snapshot().TotalCount},
		{"Membresías", st.Memberships.Snapshot().TotalCount},
	}
	for _, c := range counts {
		b.WriteString(styles.Text.Render(fmt.Sprintf("  %s %d", padRight(c.label, 14), c.total)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Catalog health
	authors := st.Authors.All()
	b.WriteString(styles.MutedText.Render("Catálogo"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf(
		"  %s %d de %d",
		padRight("Autores activos", 18),
		metrics.ActiveCount(authors, func(a libreria.Author) bool { return a.Active }),
		len(authors),
	)))
	b.WriteString("\n\n")

	// Orders
	orders := st.Orders.All()
	b.WriteString(styles.MutedText.Render("Órdenes (página cargada)"))
	b.WriteString("\n")
	byStatus := metrics.CountByStatus(orders)
	statuses := make([]string, 0, len(byStatus))
	for s := range byStatus {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		b.WriteString("  ")
		b.WriteString(styles.StatusStyle(s).Render(s))
		b.WriteString(styles.Text.Render(fmt.Sprintf(" %d", byStatus[s])))
		b.WriteString("\n")
	}
	b.WriteString(styles.Text.Render("  Total facturado " + formatMoney(metrics.OrdersTotal(orders))))
	b.WriteString("\n\n")

	// Memberships
	memberships := st.Memberships.All()
	subs := metrics.SubscribersPerMembership(memberships)
	b.WriteString(styles.MutedText.Render("Membresías"))
	b.WriteString("\n")
	for _, plan := range memberships {
		line := fmt.Sprintf(
			"  %s %s · %d beneficios · %d suscriptores activos",
			padRight(truncate(plan.Name, 20), 22),
			formatMoney(plan.Price),
			metrics.BenefitCount(plan),
			subs[plan.ID],
		)
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(styles.SuccessText.Render(
		"  Ingreso mensual estimado " + formatMoney(metrics.MonthlyRevenue(memberships)),
	))
	b.WriteString("\n")

	return b.String()
}
