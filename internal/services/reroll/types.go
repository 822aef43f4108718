package reroll

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/dice"
	"github.com/KirkDiggler/dicesim/internal/keep"
	"github.com/KirkDiggler/dicesim/internal/models"
)

// Config holds configuration for the reroll service
type Config struct {
	// DiceRoller produces every die value
	DiceRoller dice.Roller

	// Logger receives one debug entry per round; optional
	Logger *zap.Logger
}

// RollWithChoiceInput contains parameters for a sequence of reroll rounds
type RollWithChoiceInput struct {
	// Keeper picks the dice that survive each round; nil keeps nothing
	Keeper keep.Keeper

	// Rounds is the number of rounds including the first throw
	Rounds int

	// Num is the number of dice
	Num int

	// Sides is the side configuration of the dice
	Sides models.Sides
}

// RollWithChoiceOutput contains every round's outcome
type RollWithChoiceOutput struct {
	// Rounds holds one outcome per round, first throw first
	Rounds []models.Outcome
}

// Last returns the final round's outcome
func (o *RollWithChoiceOutput) Last() models.Outcome {
	if o == nil || len(o.Rounds) == 0 {
		return nil
	}
	return o.Rounds[len(o.Rounds)-1]
}
