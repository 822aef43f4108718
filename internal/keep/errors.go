package keep

// Error is a keep strategy configuration error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownStrategy Error = "unknown keep strategy"
	ErrInvalidArgument Error = "invalid keep strategy argument"
)
