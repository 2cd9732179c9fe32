package idgen

import (
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
)

// UUIDGenerator issues random version 4 UUIDs
type UUIDGenerator struct{}

var _ coreport.IDGenerator = UUIDGenerator{}

// NewUUIDGenerator creates a new UUIDGenerator
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
