package arena

import "github.com/google/uuid"

// IDGenerator mints fight identifiers
// This allows us to pin IDs in tests
type IDGenerator interface {
	New() string
}

// UUIDGenerator implements IDGenerator with random UUIDs
type UUIDGenerator struct{}

// New returns a new UUID string
func (UUIDGenerator) New() string {
	return uuid.New().String()
}
