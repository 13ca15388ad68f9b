package config

// Configer resolves string configuration keys. The tools carry a handful
// of optional keys, so the surface is plain lookup with defaults.
type Configer interface {
	LoadFromPath(path string) error
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
}
