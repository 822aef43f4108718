package simulation

// SimulationError is a custom error type for simulation errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SimulationError = "config cannot be nil"
	ErrNilRerollService SimulationError = "reroll service cannot be nil"
	ErrNilClock         SimulationError = "clock cannot be nil"
	ErrNilUUIDGenerator SimulationError = "UUID generator cannot be nil"
	ErrNilInput         SimulationError = "input cannot be nil"
	ErrInvalidTimes     SimulationError = "number of simulations must be at least 1"
)
