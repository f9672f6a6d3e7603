// Package app is the composition root of the atril dashboard.
//
// # Overview
//
// This package wires together configuration, the backend client, the
// per-entity collection stores, snapshot persistence, and the UI. Every
// dependency is constructed here and handed down explicitly; nothing else
// in the program reaches for globals.
//
// # Startup
//
//  1. Load TOML configuration from ~/.config/atril/config.toml
//  2. Load user preferences (theme, page size) from prefs.toml
//  3. Initialize the librería HTTP client
//  4. Build one state.Store per entity, all sharing a notify.Center
//  5. Open the snapshot database and hydrate stores from the last session
//  6. Optionally start the background refresher
//  7. Start the TUI and block until the operator exits
//  8. Persist every store's durable subset back to the snapshot database
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read dashboard config
//	       ├─────> libreria.NewClient() Backend HTTP client
//	       ├─────> buildStores()        One store per entity
//	       ├─────> dbcache.Open()       Snapshot database
//	       ├─────> hydrateStores()      Paint cached rows immediately
//	       ├─────> StartRefresher()     Background sweeps (optional)
//	       ├─────> ui.Run()             TUI (blocks)
//	       └─────> persistStores()      Write snapshots on exit
//
// # Refresh Behavior
//
// When refresh_every is configured, a background goroutine sweeps every
// store at that cadence. Sweeps go through the stores' reentrancy and
// throttle guards, so they never stack on user-triggered loads, and
// consecutive failed sweeps back off exponentially up to five minutes.
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable configuration, a malformed
// API base URL. Everything else is recoverable: a missing snapshot
// database starts the session cold, and backend failures during a session
// surface as error phases and toasts while cached rows stay on screen.
package app
