package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_String(t *testing.T) {
	assert.Equal(t, "7", Scalar(7).String())
	assert.Equal(t, "(1, 2, 6)", Tuple(1, 2, 6).String())
	assert.Equal(t, "(4,)", Tuple(4).String())
	assert.Equal(t, "()", Tuple().String())
}

func TestValue_KeyDistinguishesKinds(t *testing.T) {
	assert.NotEqual(t, Scalar(4).Key(), Tuple(4).Key())
	assert.Equal(t, Tuple(1, 2).Key(), Tuple(1, 2).Key())
	assert.NotEqual(t, Tuple(1, 2).Key(), Tuple(12).Key())
}

func TestValue_Ordering(t *testing.T) {
	values := []Value{
		Tuple(2),
		Tuple(1, 3),
		Scalar(10),
		Tuple(1),
		Scalar(2),
		Tuple(),
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i].Compare(values[j]) < 0
	})

	expected := []string{"2", "10", "()", "(1,)", "(1, 3)", "(2,)"}
	for i, v := range values {
		assert.Equal(t, expected[i], v.String())
	}
}

func TestValue_TupleIsCopied(t *testing.T) {
	items := []int{3, 1}
	v := Tuple(items...)
	items[0] = 9

	assert.Equal(t, []int{3, 1}, v.Items())
	assert.Nil(t, Scalar(1).Items())
}

func TestOutcome_Helpers(t *testing.T) {
	o := Outcome{6, 6, 3}

	assert.Equal(t, 2, o.Count(6))
	assert.True(t, o.Contains(3))
	assert.False(t, o.Contains(1))
	assert.Equal(t, 15, o.Sum())
	assert.Equal(t, "[6, 6, 3]", o.String())
	assert.Equal(t, "[]", Outcome{}.String())
}

func TestSides_Expand(t *testing.T) {
	assert.Equal(t, []int{6, 6, 6}, SharedSides(6).Expand(3))
	assert.Equal(t, []int{4, 8}, PerDieSides(4, 8).Expand(2))
	assert.Empty(t, SharedSides(6).Expand(0))
}
