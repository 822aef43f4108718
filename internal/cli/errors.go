package cli

// CLIError is a custom error type for command-line errors
type CLIError string

// Error implements the error interface
func (e CLIError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrConfiguration      CLIError = "invalid configuration"
	ErrUnexpectedArgument CLIError = "unexpected argument"
)
