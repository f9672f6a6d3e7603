package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/state"
)

// Stores holds one collection store per entity. The composition root builds
// them and hands them to both the UI and the snapshot persistence layer.
type Stores struct {
	Authors     *state.Store[libreria.Author]
	Categories  *state.Store[libreria.Category]
	Topics      *state.Store[libreria.Topic]
	Customers   *state.Store[libreria.Customer]
	Users       *state.Store[libreria.User]
	Orders      *state.Store[libreria.Order]
	Memberships *state.Store[libreria.Membership]
}

func activeLabel(active bool) string {
	if active {
		return "activo"
	}
	return "inactivo"
}

// buildPanes wires every entity tab: store, table layout, and the write
// operations each entity supports.
func buildPanes(client libreria.Backend, st Stores, center *notify.Center) []Pane {
	return []Pane{
		authorPane(client, st, center),
		categoryPane(client, st, center),
		topicPane(client, st, center),
		customerPane(client, st, center),
		userPane(client, st, center),
		orderPane(client, st, center),
		membershipPane(client, st, center),
	}
}

func authorPane(client libreria.Backend, st Stores, center *notify.Center) Pane {
	return newPane(paneConfig[libreria.Author]{
		title:  "Autores",
		store:  st.Authors,
		center: center,
		columns: []column{
			{title: "ID", width: 5},
			{title: "Nombre", width: 0},
			{title: "Nacionalidad", width: 16},
			{title: "Estado", width: 10},
		},
		key: func(a libreria.Author) int64 { return a.ID },
		cells: func(a libreria.Author) []string {
			return []string{fmt.Sprintf("%d", a.ID), a.Name, a.Nationality}
		},
		status:    func(a libreria.Author) string { return activeLabel(a.Active) },
		isActive:  func(a libreria.Author) bool { return a.Active },
		setActive: func(a *libreria.Author, v bool) { a.Active = v },
		toggle:    client.SetAuthorActive,
		detail: func(a libreria.Author) []string {
			return []string{
				detailLine("ID", fmt.Sprintf("%d", a.ID)),
				detailLine("Nombre", a.Name),
				detailLine("Nacionalidad", a.Nationality),
				detailLine("Estado", activeLabel(a.Active)),
				detailLine("Biografía", a.Bio),
				detailLine("Creado", a.CreatedAt),
				detailLine("Actualizado", a.UpdatedAt),
			}
		},
		form: func(existing *libreria.Author) *form {
			fields := []formField{
				{label: "Nombre", placeholder: "Gabriela Mistral"},
				{label: "Nacionalidad", placeholder: "Chile"},
				{label: "Biografía"},
			}
			title := "Nuevo autor"
			if existing != nil {
				title = "Editar autor"
				fields[0].value = existing.Name
				fields[1].value = existing.Nationality
				fields[2].value = existing.Bio
			}
			return newForm(title, fields, func(ctx context.Context, v []string) error {
				if v[0] == "" {
					return errors.New("el nombre es obligatorio")
				}
				if existing == nil {
					created, err := client.CreateAuthor(ctx, libreria.Author{
						Name:        v[0],
						Nationality: v[1],
						Bio:         v[2],
						Active:      true,
					})
					if err != nil {
						return err
					}
					st.Authors.Prepend(created)
					center.Success("Autor creado")
					st.Authors.Refresh(ctx)
					return nil
				}
				updated := *existing
				updated.Name, updated.Nationality, updated.Bio = v[0], v[1], v[2]
				if err := client.UpdateAuthor(ctx, updated); err != nil {
					return err
				}
				st.Authors.Patch(existing.ID, func(a *libreria.Author) {
					a.Name, a.Nationality, a.Bio = v[0], v[1], v[2]
				})
				center.Success("Autor actualizado")
				st.Authors.Refresh(ctx)
				return nil
			})
		},
	})
}

func categoryPane(client libreria.Backend, st Stores, center *notify.Center) Pane {
	return newPane(paneConfig[libreria.Category]{
		title:  "Categorías",
		store:  st.Categories,
		center: center,
		columns: []column{
			{title: "ID", width: 5},
			{title: "Nombre", width: 24},
			{title: "Descripción", width: 0},
			{title: "Estado", width: 10},
		},
		key: func(c libreria.Category) int64 { return c.ID },
		cells: func(c libreria.Category) []string {
			return []string{fmt.Sprintf("%d", c.ID), c.Name, c.Description}
		},
		status:    func(c libreria.Category) string { return activeLabel(c.Active) },
		isActive:  func(c libreria.Category) bool { return c.Active },
		setActive: func(c *libreria.Category, v bool) { c.Active = v },
		toggle:    client.SetCategoryActive,
		form: func(existing *libreria.Category) *form {
			fields := []formField{
				{label: "Nombre", placeholder: "Poesía"},
				{label: "Descripción"},
			}
			title := "Nueva categoría"
			if existing != nil {
				title = "Editar categoría"
				fields[0].value = existing.Name
				fields[1].value = existing.Description
			}
			return newForm(title, fields, func(ctx context.Context, v []string) error {
				if v[0] == "" {
					return errors.New("el nombre es obligatorio")
				}
				if existing == nil {
					created, err := client.CreateCategory(ctx, libreria.Category{
						Name:        v[0],
						Description: v[1],
						Active:      true,
					})
					if err != nil {
						return err
					}
					st.Categories.Prepend(created)
					center.Success("Categoría creada")
					st.Categories.Refresh(ctx)
					return nil
				}
				updated := *existing
				updated.Name, updated.Description = v[0], v[1]
				if err := client.UpdateCategory(ctx, updated); err != nil {
					return err
				}
				st.Categories.Patch(existing.ID, func(c *libreria.Category) {
					c.Name, c.Description = v[0], v[1]
				})
				center.Success("Categoría actualizada")
				st.Categories.Refresh(ctx)
				return nil
			})
		},
	})
}

func topicPane(client libreria.Backend, st Stores, center *notify.Center) Pane {
	return newPane(paneConfig[libreria.Topic]{
		title:  "Temas",
		store:  st.Topics,
		center: center,
		columns: []column{
			{title: "ID", width: 5},
			{title: "Nombre", width: 24},
			{title: "Descripción", width: 0},
			{title: "Estado", width: 10},
		},
		key: func(t libreria.Topic) int64 { return t.ID },
		cells: func(t libreria.Topic) []string {
			return []string{fmt.Sprintf("%d", t.ID), t.Name, t.Description}
		},
		status:    func(t libreria.Topic) string { return activeLabel(t.Active) },
		isActive:  func(t libreria.Topic) bool { return t.Active },
		setActive: func(t *libreria.Topic, v bool) { t.Active = v },
		toggle:    client.SetTopicActive,
		form: func(existing *libreria.Topic) *form {
			fields := []formField{
				{label: "Nombre", placeholder: "Realismo mágico"},
				{label: "Descripción"},
			}
			title := "Nuevo tema"
			if existing != nil {
				title = "Editar tema"
				fields[0].value = existing.Name
				fields[1].value = existing.Description
			}
			return newForm(title, fields, func(ctx context.Context, v []string) error {
				if v[0] == "" {
					return errors.New("el nombre es obligatorio")
				}
				if existing == nil {
					created, err := client.CreateTopic(ctx, libreria.Topic{
						Name:        v[0],
						Description: v[1],
						Active:      true,
					})
					if err != nil {
						return err
					}
					st.Topics.Prepend(created)
					center.Success("Tema creado")
					st.Topics.Refresh(ctx)
					return nil
				}
				updated := *existing
				updated.Name, updated.Description = v[0], v[1]
				if err := client.UpdateTopic(ctx, updated); err != nil {
					return err
				}
				st.Topics.Patch(existing.ID, func(t *libreria.Topic) {
					t.Name, t.Description = v[0], v[1]
				})
				center.Success("Tema actualizado")
				st.Topics.Refresh(ctx)
				return nil
			})
		},
	})
}

func customerPane(client libreria.Backend, st Stores, center *notify.Center) Pane {
	return newPane(paneConfig[libreria.Customer]{
		title:  "Clientes",
		store:  st.Customers,
		center: center,
		columns: []column{
			{title: "ID", width: 5},
			{title: "Nombre", width: 26},
			{title: "Email", width: 0},
			{title: "Teléfono", width: 14},
			{title: "Estado", width: 10},
		},
		key: func(c libreria.Customer) int64 { return c.ID },
		cells: func(c libreria.Customer) []string {
			full := c.Name
			if c.LastName != "" {
				full += " " + c.LastName
			}
			return []string{fmt.Sprintf("%d", c.ID), full, c.Email, c.Phone}
		},
		status:    func(c libreria.Customer) string { return activeLabel(c.Active) },
		isActive:  func(c libreria.Customer) bool { return c.Active },
		setActive: func(c *libreria.Customer, v bool) { c.Active = v },
		toggle:    client.SetCustomerActive,
		detail: func(c libreria.Customer) []string {
			full := c.Name
			if c.LastName != "" {
				full += " " + c.LastName
			}
			return []string{
				detailLine("ID", fmt.Sprintf("%d", c.ID)),
				detailLine("Nombre", full),
				detailLine("Email", c.Email),
				detailLine("Teléfono", c.Phone),
				detailLine("Estado", activeLabel(c.Active)),
				detailLine("Creado", c.CreatedAt),
			}
		},
		form: func(existing *libreria.Customer) *form {
			fields := []formField{
				{label: "Nombre", placeholder: "María"},
				{label: "Apellido", placeholder: "Fernández"},
				{label: "Email", placeholder: "maria@example.com"},
				{label: "Teléfono"},
			}
			title := "Nuevo cliente"
			if existing != nil {
				title = "Editar cliente"
				fields[0].value = existing.Name
				fields[1].value = existing.LastName
				fields[2].value = existing.Email
				fields[3].value = existing.Phone
			}
			return newForm(title, fields, func(ctx context.Context, v []string) error {
				if v[0] == "" || v[2] == "" {
					return errors.New("nombre y email son obligatorios")
				}
				if existing == nil {
					created, err := client.CreateCustomer(ctx, libreria.Customer{
						Name:     v[0],
						LastName: v[1],
						Email:    v[2],
						Phone:    v[3],
						Active:   true,
					})
					if err != nil {
						return err
					}
					st.Customers.Prepend(created)
					center.Success("Cliente creado")
					st.Customers.Refresh(ctx)
					return nil
				}
				updated := *existing
				updated.Name, updated.LastName, updated.Email, updated.Phone = v[0], v[1], v[2], v[3]
				if err := client.UpdateCustomer(ctx, updated); err != nil {
					return err
				}
				st.Customers.Patch(existing.ID, func(c *libreria.Customer) {
					c.Name, c.LastName, c.Email, c.Phone = v[0], v[1], v[2], v[3]
				})
				center.Success("Cliente actualizado")
				st.Customers.Refresh(ctx)
				return nil
			})
		},
	})
}

func userPane(client libreria.Backend, st Stores, center *notify.Center) Pane {
	return newPane(paneConfig[libreria.User]{
		title:  "Usuarios",
		store:  st.Users,
		center: center,
		columns: []column{
			{title: "ID", width: 5},
			{title: "Nombre", width: 26},
			{title: "Email", width: 0},
			{title: "Rol", width: 12},
			{title: "Estado", width: 10},
		},
		key: func(u libreria.User) int64 { return u.ID },
		cells: func(u libreria.User) []string {
			return []string{fmt.Sprintf("%d", u.ID), u.Name, u.Email, u.Role}
		},
		status:    func(u libreria.User) string { return activeLabel(u.Active) },
		isActive:  func(u libreria.User) bool { return u.Active },
		setActive: func(u *libreria.User, v bool) { u.Active = v },
		toggle:    client.SetUserActive,
		form: func(existing *libreria.User) *form {
			fields := []formField{
				{label: "Nombre", placeholder: "Ana Torres"},
				{label: "Email", placeholder: "ana@libreria.mx"},
				{label: "Rol", placeholder: "admin"},
			}
			title := "Nuevo usuario"
			if existing != nil {
				title = "Editar usuario"
				fields[0].value = existing.Name
				fields[1].value = existing.Email
				fields[2].value = existing.Role
			}
			return newForm(title, fields, func(ctx context.Context, v []string) error {
				if v[0] == "" || v[1] == "" {
					return errors.New("nombre y email son obligatorios")
				}
				if existing == nil {
					created, err := client.CreateUser(ctx, libreria.User{
						Name:   v[0],
						Email:  v[1],
						Role:   v[2],
						Active: true,
					})
					if err != nil {
						return err
					}
					st.Users.Prepend(created)
					center.Success("Usuario creado")
					st.Users.Refresh(ctx)
					return nil
				}
				updated := *existing
				updated.Name, updated.Email, updated.Role = v[0], v[1], v[2]
				if err := client.UpdateUser(ctx, updated); err != nil {
					return err
				}
				st.Users.Patch(existing.ID, func(u *libreria.User) {
					u.Name, u.Email, u.Role = v[0], v[1], v[2]
				})
				center.Success("Usuario actualizado")
				st.Users.Refresh(ctx)
				return nil
			})
		},
	})
}

func orderPane(client libreria.Backend, st Stores, center *notify.Center) Pane {
	return newPane(paneConfig[libreria.Order]{
		title:  "Órdenes",
		store:  st.Orders,
		center: center,
		columns: []column{
			{title: "ID", width: 6},
			{title: "Cliente", width: 0},
			{title: "Artículos", width: 10},
			{title: "Total", width: 12},
			{title: "Estado", width: 12},
		},
		key: func(o libreria.Order) int64 { return o.ID },
		cells: func(o libreria.Order) []string {
			return []string{
				fmt.Sprintf("%d", o.ID),
				o.Customer,
				fmt.Sprintf("%d", len(o.Items)),
				formatMoney(o.Total),
			}
		},
		status:     func(o libreria.Order) string { return o.Status },
		nextStatus: func(o libreria.Order) string { return libreria.NextOrderStatus(o.Status) },
		setStatus:  func(o *libreria.Order, s string) { o.Status = s },
		advance:    client.UpdateOrderStatus,
		detail:     orderDetail,
	})
}

func membershipPane(client libreria.Backend, st Stores, center *notify.Center) Pane {
	return newPane(paneConfig[libreria.Membership]{
		title:  "Membresías",
		store:  st.Memberships,
		center: center,
		columns: []column{
			{title: "ID", width: 5},
			{title: "Plan", width: 0},
			{title: "Precio", width: 12},
			{title: "Beneficios", width: 11},
			{title: "Suscriptores", width: 13},
			{title: "Estado", width: 10},
		},
		key: func(m libreria.Membership) int64 { return m.ID },
		cells: func(m libreria.Membership) []string {
			return []string{
				fmt.Sprintf("%d", m.ID),
				m.Name,
				formatMoney(m.Price),
				fmt.Sprintf("%d", len(m.Benefits)),
				fmt.Sprintf("%d", len(m.Subscriptions)),
			}
		},
		status:    func(m libreria.Membership) string { return activeLabel(m.Active) },
		isActive:  func(m libreria.Membership) bool { return m.Active },
		setActive: func(m *libreria.Membership, v bool) { m.Active = v },
		toggle:    client.SetMembershipActive,
		detail:    membershipDetail,
	})
}

// orderDetail lists the order header followed by its line items.
func orderDetail(o libreria.Order) []string {
	lines := []string{
		detailLine("Orden", fmt.Sprintf("#%d", o.ID)),
		detailLine("Cliente", o.Customer),
		detailLine("Estado", o.Status),
		detailLine("Creado", o.CreatedAt),
		"",
		fmt.Sprintf("Artículos (%d)", len(o.Items)),
	}
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf("  %d× %s  %s", it.Quantity, it.Title, formatMoney(it.Price)))
	}
	lines = append(lines, "", detailLine("Total", formatMoney(o.Total)))
	return lines
}

// membershipDetail lists the plan, its benefits, and attached subscriptions.
func membershipDetail(m libreria.Membership) []string {
	lines := []string{
		detailLine("Plan", m.Name),
		detailLine("Precio", formatMoney(m.Price)),
		detailLine("Estado", activeLabel(m.Active)),
		"",
		fmt.Sprintf("Beneficios (%d)", len(m.Benefits)),
	}
	for _, b := range m.Benefits {
		lines = append(lines, "  · "+b.Description)
	}
	lines = append(lines, "", fmt.Sprintf("Suscripciones (%d)", len(m.Subscriptions)))
	for _, s := range m.Subscriptions {
		state := "inactiva"
		if s.Active {
			state = "activa"
		}
		lines = append(lines, fmt.Sprintf("  · cliente %d desde %s (%s)", s.CustomerID, s.StartDate, state))
	}
	return lines
}
