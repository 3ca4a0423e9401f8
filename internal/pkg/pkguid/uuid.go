package pkguid

import "github.com/google/uuid"

// UUID generates time-ordered UUIDv7 strings.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUIDv7 string.
func (u *UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
