package cli

import "github.com/google/uuid"

// NameGenerator produces names for records added without one.
type NameGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-ordered UUIDv7 names.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

func (o *RootOptions) nameGenerator() NameGenerator {
	if o.NameGenerator != nil {
		return o.NameGenerator
	}
	return UUIDv7Generator{}
}
