// Package board holds the state model for the three-column work board.
//
// # Overview
//
// A Board owns three pieces of state: an ordered slice of items, an optional
// selection cursor, and the active column. Status is a field on each item,
// not a partition: the visual columns are filters over one backing slice.
//
// # Indexing Domain
//
// The selection cursor addresses the full backing slice. Rendered columns
// independently filter that slice per draw and apply the cursor within their
// own filtered view. Deletion and navigation therefore operate over all
// items regardless of which column is active. This asymmetry between the
// index space and the rendering space is deliberate — it matches the
// observable behavior of the system this board models — and must not be
// "fixed" to per-column indexing.
//
// # Error Handling
//
// No operation returns an error. Empty-board navigation and deletion without
// a selection are no-ops; boundary indices wrap or clamp.
package board
