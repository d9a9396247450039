// Package store persists whole collections as single JSON snapshots.
//
// Every read loads an entire collection and every write replaces it
// wholesale. There are no partial updates, no cross-collection
// transactions and concurrent writers follow last-write-wins.
package store

// Store is the persistence boundary injected into every repository.
type Store interface {
	// Load fills out with the named collection's current contents.
	// A missing or malformed backing record leaves out at its zero
	// value and returns nil: callers never observe a hard error from
	// "no data yet". A non-nil error indicates an unusable out target.
	Load(name string, out any) error

	// Save replaces the named collection with v. Write failures
	// propagate to the caller.
	Save(name string, v any) error
}
