package utils

import "github.com/google/uuid"

// UUIDGenerator produces idempotency tokens for job submissions.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh random (version 4) UUID string.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
