package store

import "github.com/google/uuid"

// IDGenerator produces unique account identifiers. UUIDv7 keeps IDs
// time-sortable; if v7 generation fails it falls back to a random v4.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
