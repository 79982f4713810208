// storage/store.go
package storage

// Store is a string-keyed JSON record store. Every directory in the system
// reads through it on each call — there is no caching layer above it.
//
// Failure semantics are deliberately soft: Get reports false for missing or
// unreadable records, Set logs and drops the write if the backend is
// unavailable. Callers never see an error value from this layer.
type Store interface {
	// Get unmarshals the record at key into out. Returns false if the key
	// is absent or the stored payload cannot be decoded.
	Get(key string, out interface{}) bool

	// Set marshals value as JSON and persists it under key (last write wins).
	Set(key string, value interface{})

	// Remove deletes the record at key. Removing a missing key is a no-op.
	Remove(key string)

	// Keys returns all stored keys starting with prefix, in no particular
	// order. Used by the directories for their linear scans.
	Keys(prefix string) []string
}
