package reroll

// RerollError is a custom error type for reroll errors
type RerollError string

// Error implements the error interface
func (e RerollError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     RerollError = "config cannot be nil"
	ErrNilDiceRoller RerollError = "dice roller cannot be nil"
	ErrNilInput      RerollError = "input cannot be nil"
	ErrInvalidRounds RerollError = "number of rounds must be at least 1"
	ErrCorruptKeep   RerollError = "keep strategy result is corrupt"
)
