package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dicesim/internal/dice Roller

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// Roller rolls dice
type Roller interface {
	// RollDie returns a uniformly random value in [1, sides]
	RollDie(sides int) (int, error)

	// RollDice rolls num independent dice using the given side configuration
	RollDice(num int, sides models.Sides) (models.Outcome, error)
}

// Config for dice roller
type Config struct {
	// Optional seed; nil draws a fresh one
	Seed *int64
}

// Random is a Roller backed by a seeded pseudo-random generator.
// It is not safe for concurrent use.
type Random struct {
	seed   int64
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		s, err := NewSeed()
		if err != nil {
			s = time.Now().UnixNano()
		}
		seed = s
	}

	return &Random{
		seed:   seed,
		random: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the roller was created with
func (r *Random) Seed() int64 {
	return r.seed
}

// RollDie generates a random dice roll with the specified number of sides
func (r *Random) RollDie(sides int) (int, error) {
	if sides < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSides, sides)
	}
	return r.random.Intn(sides) + 1, nil
}

// RollDice rolls num dice. A per-die configuration must list exactly num side counts.
func (r *Random) RollDice(num int, sides models.Sides) (models.Outcome, error) {
	if num < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, num)
	}
	if sides.IsPerDie() && len(sides.PerDie) != num {
		return nil, fmt.Errorf("%w: got %d side counts for %d dice", ErrSidesMismatch, len(sides.PerDie), num)
	}

	outcome := make(models.Outcome, 0, num)
	for _, s := range sides.Expand(num) {
		value, err := r.RollDie(s)
		if err != nil {
			return nil, err
		}
		outcome = append(outcome, value)
	}
	return outcome, nil
}
