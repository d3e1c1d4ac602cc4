// Package store is the local durability layer: JSON-serializable blobs
// under user-namespaced keys. Read failures and corrupt values are
// reported as absent so callers self-heal by rewriting defaults; there
// is no transactional guarantee across keys.
package store

// Store persists JSON-serializable values. Get decodes into out and
// reports false when the key is absent or its stored value cannot be
// decoded; such values are effectively discarded by the next Put.
type Store interface {
	Put(key string, value any) error
	Get(key string, out any) (bool, error)
	Delete(key string) error
	Close() error
}

// Key builds a user-scoped storage key. Namespacing by user id keeps
// concurrent local identities from cross-contaminating state.
func Key(namespace, name string) string {
	return namespace + "/" + name
}
