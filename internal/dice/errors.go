package dice

// Error is a dice configuration error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidSides  Error = "dice must have at least one side"
	ErrInvalidCount  Error = "number of dice cannot be negative"
	ErrSidesMismatch Error = "number of side counts must match the number of dice"
)
