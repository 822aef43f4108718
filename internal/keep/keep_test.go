package keep

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dicesim/internal/models"
)

func TestStrategy_Keep(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		outcome  models.Outcome
		expected []int
	}{
		{
			name:     "none keeps nothing",
			strategy: None(),
			outcome:  models.Outcome{6, 6, 3},
			expected: []int{},
		},
		{
			name:     "zero value strategy keeps nothing",
			strategy: Strategy{},
			outcome:  models.Outcome{1, 2},
			expected: []int{},
		},
		{
			name:     "value keeps sixes",
			strategy: Strategy{Kind: KindValue, Values: []int{6}},
			outcome:  models.Outcome{6, 2, 6, 5},
			expected: []int{6, 6},
		},
		{
			name:     "value keeps several faces",
			strategy: Strategy{Kind: KindValue, Values: []int{5, 6}},
			outcome:  models.Outcome{6, 2, 5, 1},
			expected: []int{6, 5},
		},
		{
			name:     "value without faces keeps nothing",
			strategy: Strategy{Kind: KindValue},
			outcome:  models.Outcome{6, 2},
			expected: []int{},
		},
		{
			name:     "unique collapses duplicates in first-appearance order",
			strategy: Strategy{Kind: KindUnique},
			outcome:  models.Outcome{6, 6, 3},
			expected: []int{6, 3},
		},
		{
			name:     "duplicate keeps every copy",
			strategy: Strategy{Kind: KindDuplicate},
			outcome:  models.Outcome{2, 5, 2, 4, 5, 2},
			expected: []int{2, 5, 2, 5, 2},
		},
		{
			name:     "duplicate with all distinct keeps nothing",
			strategy: Strategy{Kind: KindDuplicate},
			outcome:  models.Outcome{1, 2, 3},
			expected: []int{},
		},
		{
			name:     "some-unique under the cap",
			strategy: Strategy{Kind: KindSomeUnique, Max: 5},
			outcome:  models.Outcome{4, 4, 1},
			expected: []int{4, 1},
		},
		{
			name:     "some-unique drops the highest values first",
			strategy: Strategy{Kind: KindSomeUnique, Max: 2},
			outcome:  models.Outcome{5, 1, 6, 3, 3},
			expected: []int{1, 3},
		},
		{
			name:     "some-unique with zero cap",
			strategy: Strategy{Kind: KindSomeUnique, Max: 0},
			outcome:  models.Outcome{5, 1},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.strategy.Keep(tt.outcome))
		})
	}
}

// Every strategy must return a sub-multiset of its input
func TestStrategy_KeepIsSubMultiset(t *testing.T) {
	strategies := []Strategy{
		None(),
		{Kind: KindValue, Values: []int{1, 6}},
		{Kind: KindUnique},
		{Kind: KindDuplicate},
		{Kind: KindSomeUnique, Max: 2},
		{Kind: KindSomeUnique, Max: DefaultMaxUnique},
	}

	rng := rand.New(rand.NewSource(2014))
	for i := 0; i < 2000; i++ {
		outcome := make(models.Outcome, rng.Intn(8))
		for j := range outcome {
			outcome[j] = rng.Intn(6) + 1
		}

		for _, strategy := range strategies {
			kept := strategy.Keep(outcome)
			require.LessOrEqual(t, len(kept), len(outcome), "%s on %v", strategy, outcome)

			claimed := map[int]int{}
			for _, v := range kept {
				claimed[v]++
			}
			for v, n := range claimed {
				require.LessOrEqual(t, n, outcome.Count(v), "%s kept %v from %v", strategy, kept, outcome)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		args     []string
		expected Strategy
		wantErr  error
	}{
		{
			name:     "empty defaults to none",
			expected: Strategy{Kind: KindNone},
		},
		{
			name:     "value with faces",
			input:    "value",
			args:     []string{"6", "5"},
			expected: Strategy{Kind: KindValue, Values: []int{6, 5}},
		},
		{
			name:     "unique ignores arguments",
			input:    "unique",
			args:     []string{"3"},
			expected: Strategy{Kind: KindUnique},
		},
		{
			name:     "duplicate",
			input:    "duplicate",
			expected: Strategy{Kind: KindDuplicate},
		},
		{
			name:     "some-unique default cap",
			input:    "some-unique",
			expected: Strategy{Kind: KindSomeUnique, Max: DefaultMaxUnique},
		},
		{
			name:     "some-unique explicit cap",
			input:    "some-unique",
			args:     []string{"2"},
			expected: Strategy{Kind: KindSomeUnique, Max: 2},
		},
		{
			name:    "some-unique negative cap",
			input:   "some-unique",
			args:    []string{"-1"},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "some-unique too many args",
			input:   "some-unique",
			args:    []string{"1", "2"},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "non-integer argument",
			input:   "value",
			args:    []string{"six"},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "unknown strategy",
			input:   "sixes",
			wantErr: ErrUnknownStrategy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := Parse(tt.input, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strategy)
		})
	}
}

func TestParse_UnknownListsOptions(t *testing.T) {
	_, err := Parse("bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'bogus'")
	for _, name := range Names() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "none", Strategy{}.String())
	assert.Equal(t, "value 6 5", Strategy{Kind: KindValue, Values: []int{6, 5}}.String())
	assert.Equal(t, "some-unique 3", Strategy{Kind: KindSomeUnique, Max: 3}.String())
	assert.Equal(t, "duplicate", Strategy{Kind: KindDuplicate}.String())
}
