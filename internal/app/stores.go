package app

import (
	"context"

	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/state"
	"github.com/atrilhq/atril/internal/ui"
)

// Persisted entity names, shared between the stores and the snapshot
// database keys.
const (
	entityAuthors     = "authors"
	entityCategories  = "categories"
	entityTopics      = "topics"
	entityCustomers   = "customers"
	entityUsers       = "users"
	entityOrders      = "orders"
	entityMemberships = "memberships"
)

// buildStores constructs one collection store per entity, wired to the
// backend client. Catalog entities (authors, categories, topics,
// memberships) arrive unpaginated and slice locally; customers, users, and
// orders are paginated and searched by the server.
func buildStores(client libreria.Backend, center *notify.Center, pageSize int) ui.Stores {
	return ui.Stores{
		Authors: state.New(state.Config[libreria.Author]{
			Name: entityAuthors,
			Fetch: func(ctx context.Context, q state.Query) (state.Result[libreria.Author], error) {
				items, err := client.ListAuthors(ctx)
				return state.Result[libreria.Author]{Items: items}, err
			},
			Key:             func(a libreria.Author) int64 { return a.ID },
			Haystack:        func(a libreria.Author) string { return a.Name + " " + a.Nationality },
			Active:          func(a libreria.Author) bool { return a.Active },
			ClientPaginated: true,
			PageSize:        pageSize,
			Notify:          center,
		}),

		Categories: state.New(state.Config[libreria.Category]{
			Name: entityCategories,
			Fetch: func(ctx context.Context, q state.Query) (state.Result[libreria.Category], error) {
				items, err := client.ListCategories(ctx)
				return state.Result[libreria.Category]{Items: items}, err
			},
			Key:             func(c libreria.Category) int64 { return c.ID },
			Haystack:        func(c libreria.Category) string { return c.Name + " " + c.Description },
			Active:          func(c libreria.Category) bool { return c.Active },
			ClientPaginated: true,
			PageSize:        pageSize,
			Notify:          center,
		}),

		Topics: state.New(state.Config[libreria.Topic]{
			Name: entityTopics,
			Fetch: func(ctx context.Context, q state.Query) (state.Result[libreria.Topic], error) {
				items, err := client.ListTopics(ctx)
				return state.Result[libreria.Topic]{Items: items}, err
			},
			Key:             func(t libreria.Topic) int64 { return t.ID },
			Haystack:        func(t libreria.Topic) string { return t.Name + " " + t.Description },
			Active:          func(t libreria.Topic) bool { return t.Active },
			ClientPaginated: true,
			PageSize:        pageSize,
			Notify:          center,
		}),

		Customers: state.New(state.Config[libreria.Customer]{
			Name: entityCustomers,
			Fetch: func(ctx context.Context, q state.Query) (state.Result[libreria.Customer], error) {
				items, info, err := client.ListCustomers(ctx, q.Page, q.PageSize, q.Search)
				return state.Result[libreria.Customer]{
					Items:      items,
					TotalPages: info.TotalPages,
					TotalCount: info.TotalCount,
				}, err
			},
			Key:      func(c libreria.Customer) int64 { return c.ID },
			Active:   func(c libreria.Customer) bool { return c.Active },
			PageSize: pageSize,
			Notify:   center,
		}),

		Users: state.New(state.Config[libreria.User]{
			Name: entityUsers,
			Fetch: func(ctx context.Context, q state.Query) (state.Result[libreria.User], error) {
				items, info, err := client.ListUsers(ctx, q.Page, q.PageSize, q.Search)
				return state.Result[libreria.User]{
					Items:      items,
					TotalPages: info.TotalPages,
					TotalCount: info.TotalCount,
				}, err
			},
			Key:      func(u libreria.User) int64 { return u.ID },
			Active:   func(u libreria.User) bool { return u.Active },
			PageSize: pageSize,
			Notify:   center,
		}),

		Orders: state.New(state.Config[libreria.Order]{
			Name: entityOrders,
			Fetch: func(ctx context.Context, q state.Query) (state.Result[libreria.Order], error) {
				items, info, err := client.ListOrders(ctx, q.Page, q.PageSize, q.Search)
				return state.Result[libreria.Order]{
					Items:      items,
					TotalPages: info.TotalPages,
					TotalCount: info.TotalCount,
				}, err
			},
			Key:      func(o libreria.Order) int64 { return o.ID },
			PageSize: pageSize,
			Notify:   center,
		}),

		Memberships: state.New(state.Config[libreria.Membership]{
			Name: entityMemberships,
			Fetch: func(ctx context.Context, q state.Query) (state.Result[libreria.Membership], error) {
				items, err := client.ListMemberships(ctx)
				return state.Result[libreria.Membership]{Items: items}, err
			},
			Key:             func(m libreria.Membership) int64 { return m.ID },
			Haystack:        func(m libreria.Membership) string { return m.Name },
			Active:          func(m libreria.Membership) bool { return m.Active },
			ClientPaginated: true,
			PageSize:        pageSize,
			Notify:          center,
		}),
	}
}
