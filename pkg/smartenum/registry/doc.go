// Package registry provides a generic thread-safe map for values that are
// created once per key and then shared for the life of the process.
//
// smartenum uses it as its type table: one entry per concrete enum type,
// created lazily the first time the type is touched.
//
// # Lazy Creation
//
// GetOrCreate is the only way to add an entry. It checks under a read lock
// first and only takes the write lock when the key is missing, re-checking
// before calling the factory:
//
//	r := registry.New[string, *Pool]()
//	pool := r.GetOrCreate("orders", func() *Pool {
//	    return NewPool("orders")
//	})
//
// The factory runs at most once per key, even under concurrent access.
// Entries are never replaced or removed.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Range iterates over a snapshot,
// so fn may call back into the registry.
package registry
