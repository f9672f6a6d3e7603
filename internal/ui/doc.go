// Package ui renders the atril terminal dashboard with Bubble Tea.
//
// The screen is a tabbed layout, one tab per entity collection plus an
// overview tab of aggregate metrics:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ atril  ● conectado    Autores │ Categorías │ ... │ Resumen│
//	├──────────────────────────────────────────────────────────┤
//	│ ID   Nombre              Nacionalidad          Estado    │
//	│ 12   Jorge Luis Borges   Argentina             activo    │
//	│ 15   Julia de Burgos     Puerto Rico           inactivo  │
//	│ ...                                                      │
//	├──────────────────────────────────────────────────────────┤
//	│ página 2/5 · 38 registros · filtro: Activos · ✓ al día   │
//	└──────────────────────────────────────────────────────────┘
//
// Each tab is backed by a state.Store for its entity. The Model never
// mutates the stores from the render path: user actions run as tea.Cmd
// closures that call the store (or the backend client) and deliver a
// message when done, so all blocking work stays off the UI goroutine.
//
// Type erasure happens at the Pane boundary. The generic pane adapter
// binds one store, its column layout, and its write operations; the
// Model only ever sees the Pane interface and a paneView value.
//
// Toasts come from the notify center. Every update drains pending
// messages and keeps the newest on the footer line until it expires.
package ui
