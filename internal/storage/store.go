// internal/storage/store.go
package storage

// Store is a synchronous string-keyed durable store, the persistence medium
// behind the session and cart managers. Implementations absorb their own
// failures: a read that cannot be served reports absent, a write that cannot
// be served is logged and dropped. Key namespaces are owned exclusively by
// one manager each (session:* vs cart:*), so no cross-manager locking exists.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}
