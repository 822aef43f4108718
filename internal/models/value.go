package models

import (
	"cmp"
	"strconv"
	"strings"
)

// ValueKind distinguishes scalar reduced values from tuples
type ValueKind int

const (
	// ValueKindScalar is a single integer such as a sum or a count
	ValueKindScalar ValueKind = iota

	// ValueKindTuple is an ordered list of integers
	ValueKindTuple
)

// Value is the result of reducing an outcome to something comparable.
// Values are immutable once built; use Key to index them in maps.
type Value struct {
	kind   ValueKind
	scalar int
	tuple  []int
}

// Scalar builds a single-integer value
func Scalar(n int) Value {
	return Value{kind: ValueKindScalar, scalar: n}
}

// Tuple builds an ordered tuple value from a copy of items
func Tuple(items ...int) Value {
	tuple := make([]int, len(items))
	copy(tuple, items)
	return Value{kind: ValueKindTuple, tuple: tuple}
}

// Kind returns whether the value is a scalar or a tuple
func (v Value) Kind() ValueKind {
	return v.kind
}

// Int returns the scalar; it is zero for tuples
func (v Value) Int() int {
	return v.scalar
}

// Items returns a copy of the tuple elements; it is nil for scalars
func (v Value) Items() []int {
	if v.kind != ValueKindTuple {
		return nil
	}
	out := make([]int, len(v.tuple))
	copy(out, v.tuple)
	return out
}

// Key returns a canonical string that is equal for equal values
func (v Value) Key() string {
	if v.kind == ValueKindScalar {
		return "s:" + strconv.Itoa(v.scalar)
	}
	parts := make([]string, len(v.tuple))
	for i, n := range v.tuple {
		parts[i] = strconv.Itoa(n)
	}
	return "t:" + strings.Join(parts, ",")
}

// Equal reports whether both values hold the same data
func (v Value) Equal(other Value) bool {
	return v.Compare(other) == 0
}

// Compare orders values: scalars numerically, tuples element by element with a
// shorter prefix first, and every scalar before every tuple.
func (v Value) Compare(other Value) int {
	if v.kind != other.kind {
		if v.kind == ValueKindScalar {
			return -1
		}
		return 1
	}

	if v.kind == ValueKindScalar {
		return cmp.Compare(v.scalar, other.scalar)
	}

	for i := 0; i < len(v.tuple) && i < len(other.tuple); i++ {
		if c := cmp.Compare(v.tuple[i], other.tuple[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(v.tuple), len(other.tuple))
}

// String renders scalars as plain integers and tuples in parentheses.
// A single-element tuple keeps its trailing comma, e.g. (4,).
func (v Value) String() string {
	if v.kind == ValueKindScalar {
		return strconv.Itoa(v.scalar)
	}

	var b strings.Builder
	b.WriteByte('(')
	for i, n := range v.tuple {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	if len(v.tuple) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}
