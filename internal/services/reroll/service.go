package reroll

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/common/logging"
	"github.com/KirkDiggler/dicesim/internal/dice"
	"github.com/KirkDiggler/dicesim/internal/keep"
	"github.com/KirkDiggler/dicesim/internal/models"
)

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
	logger     *zap.Logger
}

// New creates a new reroll service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	return &service{
		diceRoller: cfg.DiceRoller,
		logger:     logging.OrNop(cfg.Logger).Named("reroll"),
	}, nil
}

// RollWithChoice rolls the dice and rerolls the ones the keeper releases
func (s *service) RollWithChoice(ctx context.Context, input *RollWithChoiceInput) (*RollWithChoiceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRounds, input.Rounds)
	}

	keeper := input.Keeper
	if keeper == nil {
		keeper = keep.None()
	}

	first, err := s.diceRoller.RollDice(input.Num, input.Sides)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("first throw", zap.Ints("outcome", first))

	rounds := make([]models.Outcome, 0, input.Rounds)
	rounds = append(rounds, first)

	// Side count of each position in the latest outcome
	sides := input.Sides.Expand(input.Num)

	for round := 2; round <= input.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prev := rounds[len(rounds)-1]
		next, nextSides, err := s.reroll(prev, sides, keeper.Keep(prev.Clone()), input.Sides)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}

		rounds = append(rounds, next)
		sides = nextSides
	}

	return &RollWithChoiceOutput{
		Rounds: rounds,
	}, nil
}

// LastOnly returns only the final round's outcome
func (s *service) LastOnly(ctx context.Context, input *RollWithChoiceInput) (models.Outcome, error) {
	output, err := s.RollWithChoice(ctx, input)
	if err != nil {
		return nil, err
	}
	return output.Last(), nil
}

// reroll keeps the claimed dice from prev and rolls fresh ones for the rest.
// Kept dice come first, in the order the keeper returned them.
func (s *service) reroll(prev models.Outcome, sides []int, toKeep []int, config models.Sides) (models.Outcome, []int, error) {
	remaining := prev.Clone()
	remainingSides := slices.Clone(sides)

	next := make(models.Outcome, 0, len(prev))
	nextSides := make([]int, 0, len(prev))

	for _, value := range toKeep {
		i := slices.Index(remaining, value)
		if i < 0 {
			return nil, nil, fmt.Errorf("%w: %v for %v", ErrCorruptKeep, toKeep, prev)
		}

		next = append(next, value)
		nextSides = append(nextSides, remainingSides[i])
		remaining = slices.Delete(remaining, i, i+1)
		remainingSides = slices.Delete(remainingSides, i, i+1)
	}

	var fresh models.Outcome
	if len(remaining) > 0 {
		freshSides := models.SharedSides(config.Shared)
		if config.IsPerDie() {
			freshSides = models.PerDieSides(remainingSides...)
		}

		var err error
		fresh, err = s.diceRoller.RollDice(len(remaining), freshSides)
		if err != nil {
			return nil, nil, err
		}
	}

	s.logger.Debug("reroll",
		zap.Ints("previous", prev),
		zap.Ints("kept", next),
		zap.Ints("fresh", fresh))

	next = append(next, fresh...)
	nextSides = append(nextSides, remainingSides...)
	return next, nextSides, nil
}
