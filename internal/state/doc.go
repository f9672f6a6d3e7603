// Package state implements the collection store behind every entity screen.
//
// # Overview
//
// A Store caches one entity's collection (authors, clients, orders, …),
// tracks the pagination cursor and filters, and mediates every read against
// the backend. One store is constructed per entity by the composition root
// and shared by reference; there is no package-level state.
//
// # Data Flow
//
//	UI key press ──> Store.Load / Refresh ──> FetchFunc (libreria client)
//	                       │
//	                       ▼
//	                 finish(): replace cache, set phase
//	                       │
//	                       ▼
//	UI render <── Store.Snapshot() (cloned, filtered, sliced)
//
// # Load Guards
//
// Two guards approximate "at most one in-flight load":
//
//   - Reentrancy: a Load while the phase is Loading is a no-op.
//   - Throttle: a Load within MinLoadInterval of the previous start is a
//     no-op.
//
// Refresh bypasses both guards because it must deliver post-write
// consistency. Each load carries a monotonically increasing sequence
// number; finish discards any response that is not the latest issued, so a
// preempted or slow early response can never overwrite a newer one.
//
// # Pagination Modes
//
// Server-paginated stores (users, clients, orders) hold exactly the fetched
// page and send the cursor and normalized search term with every request.
// Client-paginated stores (authors, categories, topics, memberships) fetch
// the whole collection once and compute the visible page locally:
// Snapshot filters by search term and status, then slices
// [(page-1)*size : page*size] and derives totalPages from the filtered
// count.
//
// # Failure Semantics
//
// Failures are never fatal: the phase moves to Error, the message is kept
// for display, exactly one deduplicated toast fires, and the previous cache
// stays readable. Both success and failure flip the one-way initialized
// latch that lets views tell "nothing fetched yet" from "fetched, got
// nothing".
//
// # Persistence
//
// Saved/Hydrate exchange the durable subset (items, cursor, totals) with
// the snapshot cache. Phase, last error, and the initialized latch are
// deliberately not part of it: after a restart the store always looks
// fresh and the next Load re-establishes liveness.
package state
