// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Business code depends on the Config interface so it stays easy to test and
// does not care where values come from. The Viper implementation reads a YAML
// file and lets TRADEWIND_* environment variables override it; Bootstrap
// covers the settings needed before the file can be found.
package pkgconfig
