package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/dicesim/internal/common/uuid Generator

// Generator hands out identifiers for simulation runs
type Generator interface {
	NewRunID() string
}

// Random generates version 4 UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewRunID returns a new random UUID string
func (r *Random) NewRunID() string {
	return uuid.NewString()
}
