package keep

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// Keeper decides which dice survive into the next round.
// The returned values must be a sub-multiset of the outcome.
type Keeper interface {
	Keep(outcome models.Outcome) []int
}

// Kind names a keep strategy
type Kind string

const (
	// KindNone rerolls every die every round
	KindNone Kind = "none"

	// KindValue keeps dice that landed on one of the values of interest
	KindValue Kind = "value"

	// KindUnique keeps one die of each distinct value
	KindUnique Kind = "unique"

	// KindDuplicate keeps every die whose value appears more than once
	KindDuplicate Kind = "duplicate"

	// KindSomeUnique keeps distinct values, at most Max of them
	KindSomeUnique Kind = "some-unique"
)

// DefaultMaxUnique is the cap used by some-unique when none is given
const DefaultMaxUnique = 5

var kinds = []Kind{KindNone, KindValue, KindUnique, KindDuplicate, KindSomeUnique}

// Names returns the valid strategy names in registry order
func Names() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// Strategy is a resolved keep strategy together with its parameters
type Strategy struct {
	Kind Kind

	// Values of interest for KindValue
	Values []int

	// Max distinct values kept by KindSomeUnique
	Max int
}

// None returns the keep-none strategy
func None() Strategy {
	return Strategy{Kind: KindNone}
}

// Parse resolves a strategy name and its integer arguments.
// An empty name selects keep-none.
func Parse(name string, args []string) (Strategy, error) {
	if name == "" {
		name = string(KindNone)
	}

	kind := Kind(name)
	if !slices.Contains(kinds, kind) {
		return Strategy{}, fmt.Errorf("%w: '%s'. Valid options are: %s",
			ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}

	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return Strategy{}, fmt.Errorf("%w: %s %q", ErrInvalidArgument, name, arg)
		}
		values = append(values, v)
	}

	switch kind {
	case KindValue:
		return Strategy{Kind: kind, Values: values}, nil
	case KindSomeUnique:
		limit := DefaultMaxUnique
		if len(values) > 1 {
			return Strategy{}, fmt.Errorf("%w: %s takes at most one argument", ErrInvalidArgument, name)
		}
		if len(values) == 1 {
			limit = values[0]
		}
		if limit < 0 {
			return Strategy{}, fmt.Errorf("%w: %s limit cannot be negative", ErrInvalidArgument, name)
		}
		return Strategy{Kind: kind, Max: limit}, nil
	default:
		// Remaining strategies ignore their arguments
		return Strategy{Kind: kind}, nil
	}
}

// Keep applies the strategy to an outcome
func (s Strategy) Keep(outcome models.Outcome) []int {
	switch s.Kind {
	case KindValue:
		return keepValue(outcome, s.Values)
	case KindUnique:
		return keepUnique(outcome)
	case KindDuplicate:
		return keepDuplicates(outcome)
	case KindSomeUnique:
		return keepSomeUnique(outcome, s.Max)
	default:
		return []int{}
	}
}

// String returns the strategy as it would be written on the command line
func (s Strategy) String() string {
	switch s.Kind {
	case "":
		return string(KindNone)
	case KindValue:
		parts := []string{string(s.Kind)}
		for _, v := range s.Values {
			parts = append(parts, strconv.Itoa(v))
		}
		return strings.Join(parts, " ")
	case KindSomeUnique:
		return fmt.Sprintf("%s %d", s.Kind, s.Max)
	default:
		return string(s.Kind)
	}
}

func keepValue(outcome models.Outcome, values []int) []int {
	kept := []int{}
	for _, d := range outcome {
		if slices.Contains(values, d) {
			kept = append(kept, d)
		}
	}
	return kept
}

// keepUnique collapses duplicates, keeping first-appearance order
func keepUnique(outcome models.Outcome) []int {
	kept := []int{}
	for _, d := range outcome {
		if !slices.Contains(kept, d) {
			kept = append(kept, d)
		}
	}
	return kept
}

func keepDuplicates(outcome models.Outcome) []int {
	kept := []int{}
	for _, d := range outcome {
		if outcome.Count(d) > 1 {
			kept = append(kept, d)
		}
	}
	return kept
}

// keepSomeUnique drops the highest distinct values until at most limit remain
func keepSomeUnique(outcome models.Outcome, limit int) []int {
	kept := keepUnique(outcome)
	for len(kept) > limit {
		highest := 0
		for i, d := range kept {
			if d > kept[highest] {
				highest = i
			}
		}
		kept = slices.Delete(kept, highest, highest+1)
	}
	return kept
}
