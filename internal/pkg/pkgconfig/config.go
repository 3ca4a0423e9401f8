package pkgconfig

import "io"

// Config is the read-only view of application configuration.
type Config interface {
	io.Closer

	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	GetArray(key string) []string
}
