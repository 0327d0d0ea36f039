package storage

// Provider is a flat key-value store. Values are opaque JSON strings; the
// store has no knowledge of collection semantics.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// KV
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error

	// Utils
	GetConfigPath() string
}
