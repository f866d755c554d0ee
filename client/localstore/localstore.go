// Package localstore persists the storefront's client-local state
// (cart, favorites, session, order history) as JSON values under string
// keys, the way the web client keeps them in browser local storage.
package localstore

// Store is a mapping from string keys to JSON-serializable values.
//
// Load fills out with the value stored under key and reports whether it
// was found. A missing key or a value that no longer parses both report
// false, leaving out untouched: corrupt state falls back to the
// caller's default instead of propagating an error.
type Store interface {
	Load(key string, out any) bool
	Save(key string, v any) error
	Delete(key string) error
}
