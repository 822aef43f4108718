package models

import (
	"strconv"
	"strings"
)

// Outcome is the face value of each die after a single round
type Outcome []int

// Clone returns an independent copy of the outcome
func (o Outcome) Clone() Outcome {
	if o == nil {
		return nil
	}
	out := make(Outcome, len(o))
	copy(out, o)
	return out
}

// Count returns how many dice landed on value
func (o Outcome) Count(value int) int {
	count := 0
	for _, d := range o {
		if d == value {
			count++
		}
	}
	return count
}

// Contains reports whether any die landed on value
func (o Outcome) Contains(value int) bool {
	return o.Count(value) > 0
}

// Sum returns the total of all dice
func (o Outcome) Sum() int {
	total := 0
	for _, d := range o {
		total += d
	}
	return total
}

// String formats the outcome as a bracketed, comma separated list, e.g. [3, 5]
func (o Outcome) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range o {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(']')
	return b.String()
}
