// Package store holds the in-memory domain state the dashboard works
// against: one store per entity, each owning a list fetched from its
// resource service. Mutations call the service first and reconcile the
// list only after the call resolves; there is no optimistic write and
// therefore no rollback. Stores report outcomes through an injected
// notify.Notifier and otherwise return plain errors.
//
// A store's list is the only cache. It is rebuilt by Load and never
// refreshed behind the caller's back; a failed Load leaves the previous
// list intact and the store in StateError until the caller reloads.
package store

// State is the lifecycle of a store around its service calls.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// NeedsLoad reports whether a fresh Load is due before serving reads:
// the store either never loaded or its last call failed. Serving from a
// store in StateError would pin a transient backend outage forever.
func (s State) NeedsLoad() bool {
	return s == StateIdle || s == StateError
}
