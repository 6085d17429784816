// Package store provides per-user key-value persistence with JSON values.
// It is the backend counterpart of the web client's localStorage slots:
// every write is flushed immediately and unreadable values fall back to the
// caller's default instead of failing the request.
package store

// Store is the persistence handle injected into repositories.
type Store interface {
	// Get unmarshals the value stored under (userID, key) into dest and
	// reports whether a usable value was found. Missing or corrupt values
	// return (false, nil) so callers apply their defaults; only real
	// storage failures return an error.
	Get(userID, key string, dest any) (bool, error)

	// Set marshals value as JSON and writes it through under (userID, key).
	Set(userID, key string, value any) error

	// Delete removes the value stored under (userID, key), if any.
	Delete(userID, key string) error
}
