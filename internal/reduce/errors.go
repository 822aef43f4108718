package reduce

// Error is a reduction configuration error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownReduction Error = "unknown reduction function"
	ErrInvalidArgument  Error = "invalid reduction argument"
)
