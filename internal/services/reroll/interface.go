package reroll

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicesim/internal/services/reroll Service

import (
	"context"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// Service defines the interface for reroll operations
type Service interface {
	// RollWithChoice rolls fresh dice, then rerolls every die the keeper does not keep
	// for the remaining rounds. Every round's outcome is returned.
	RollWithChoice(ctx context.Context, input *RollWithChoiceInput) (*RollWithChoiceOutput, error)

	// LastOnly performs the same rounds but returns only the final outcome
	LastOnly(ctx context.Context, input *RollWithChoiceInput) (models.Outcome, error)
}
