// Package store owns the externally committed state the range controls read
// and write: per-field bounds, committed selections, none counts and the
// include-missing toggle. State is exposed as capability sets (Source for
// read-only values, Cell for read/write values) instead of globals, and every
// cell notifies subscribers only when its content changes.
//
// Writes made inside Store.Batch are published together when the batch ends,
// so observers never see half of a multi-field update.
package store
