package reduce

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// Reducer collapses an outcome into a single comparable value
type Reducer interface {
	Reduce(outcome models.Outcome) models.Value
}

// Kind names a reduction function
type Kind string

const (
	// KindSum totals dice, optionally only those showing values of interest
	KindSum Kind = "sum"

	// KindOrder is the sorted combination of dice, ignoring roll order
	KindOrder Kind = "order"

	// KindCount counts dice showing any value of interest
	KindCount Kind = "count"

	// KindUnique counts distinct values
	KindUnique Kind = "unique"

	// KindValues is the exact outcome in roll order
	KindValues Kind = "values"
)

var kinds = []Kind{KindSum, KindOrder, KindCount, KindUnique, KindValues}

var labels = map[Kind]string{
	KindSum:    "total sum of dice values in a throw",
	KindOrder:  "ordered dice values",
	KindCount:  "number of dice with the value %s",
	KindUnique: "number of unique dice in a throw",
	KindValues: "dice values",
}

// Names returns the valid reduction names in registry order
func Names() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// Reduction is a resolved reduction function with its values of interest
type Reduction struct {
	Kind   Kind
	Values []int
}

// Parse resolves a reduction from its name followed by integer arguments.
// No arguments at all selects sum.
func Parse(args []string) (Reduction, error) {
	if len(args) == 0 {
		return Reduction{Kind: KindSum}, nil
	}

	kind := Kind(args[0])
	if !slices.Contains(kinds, kind) {
		return Reduction{}, fmt.Errorf("%w: '%s'. Valid options are: %s",
			ErrUnknownReduction, args[0], strings.Join(Names(), ", "))
	}

	var values []int
	for _, arg := range args[1:] {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return Reduction{}, fmt.Errorf("%w: %s %q", ErrInvalidArgument, kind, arg)
		}
		values = append(values, v)
	}

	return Reduction{Kind: kind, Values: values}, nil
}

// Reduce applies the reduction to an outcome
func (r Reduction) Reduce(outcome models.Outcome) models.Value {
	switch r.Kind {
	case KindOrder:
		return orderDice(outcome, r.Values)
	case KindCount:
		return countValues(outcome, r.Values)
	case KindUnique:
		return countUnique(outcome)
	case KindValues:
		return models.Tuple(outcome...)
	default:
		return sumValues(outcome, r.Values)
	}
}

// Label describes what the reduced values mean, capitalised for display
func (r Reduction) Label() string {
	kind := r.Kind
	if kind == "" {
		kind = KindSum
	}

	label, ok := labels[kind]
	if !ok {
		return string(kind)
	}
	if kind == KindCount {
		label = fmt.Sprintf(label, models.Outcome(r.Values).String())
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func sumValues(outcome models.Outcome, values []int) models.Value {
	if len(values) == 0 {
		return models.Scalar(outcome.Sum())
	}

	total := 0
	for _, v := range distinct(values) {
		total += outcome.Count(v) * v
	}
	return models.Scalar(total)
}

func orderDice(outcome models.Outcome, values []int) models.Value {
	kept := make([]int, 0, len(outcome))
	for _, d := range outcome {
		if len(values) == 0 || slices.Contains(values, d) {
			kept = append(kept, d)
		}
	}
	slices.Sort(kept)
	return models.Tuple(kept...)
}

func countValues(outcome models.Outcome, values []int) models.Value {
	count := 0
	for _, v := range distinct(values) {
		count += outcome.Count(v)
	}
	return models.Scalar(count)
}

func countUnique(outcome models.Outcome) models.Value {
	return models.Scalar(len(distinct(outcome)))
}

func distinct(values []int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
