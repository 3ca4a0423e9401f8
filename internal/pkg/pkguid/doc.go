// Package pkguid provides helpers for generating unique identifiers.
//
// Request trace identifiers come from a StringID chosen by configuration:
// UUIDv7 strings by default, or Snowflake IDs rendered in base32 when shorter,
// time-ordered identifiers are preferred.
package pkguid
