package models

// Sides describes the side counts of the dice in a throw
type Sides struct {
	// Shared is the side count used by every die when PerDie is empty
	Shared int

	// PerDie holds one side count per die, in die order
	PerDie []int
}

// SharedSides returns a configuration where every die has the same side count
func SharedSides(sides int) Sides {
	return Sides{Shared: sides}
}

// PerDieSides returns a configuration with an explicit side count per die
func PerDieSides(sides ...int) Sides {
	perDie := make([]int, len(sides))
	copy(perDie, sides)
	return Sides{PerDie: perDie}
}

// IsPerDie reports whether each die carries its own side count
func (s Sides) IsPerDie() bool {
	return len(s.PerDie) > 0
}

// Expand returns the side count of each of num dice.
// A per-die configuration is returned as-is, whatever its length.
func (s Sides) Expand(num int) []int {
	if s.IsPerDie() {
		out := make([]int, len(s.PerDie))
		copy(out, s.PerDie)
		return out
	}

	if num < 0 {
		num = 0
	}
	out := make([]int, num)
	for i := range out {
		out[i] = s.Shared
	}
	return out
}
