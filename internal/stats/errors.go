package stats

// Error is an aggregation error
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const ErrEmptyHistogram Error = "cannot compute probabilities of an empty histogram"
