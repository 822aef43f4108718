package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/dicesim/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// Now returns the current time
func (System) Now() time.Time {
	return time.Now()
}

// Elapsed returns the time since start according to c
func Elapsed(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}
