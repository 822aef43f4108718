package simulation

import (
	"iter"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// Pipeline produces one reduced value per call, drawing fresh randomness each time
type Pipeline func() (models.Value, error)

// Sequence is a bounded series of pipeline draws. It holds no results, so
// every pass over All runs the pipeline again.
type Sequence struct {
	pipeline Pipeline
	times    int
}

// Draws returns a sequence that runs pipeline times times per pass
func Draws(pipeline Pipeline, times int) Sequence {
	if times < 0 {
		times = 0
	}
	return Sequence{
		pipeline: pipeline,
		times:    times,
	}
}

// Len returns the number of draws in one pass
func (s Sequence) Len() int {
	return s.times
}

// All yields each draw in turn. Iteration ends after the first error.
func (s Sequence) All() iter.Seq2[models.Value, error] {
	return func(yield func(models.Value, error) bool) {
		for i := 0; i < s.times; i++ {
			value, err := s.pipeline()
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}
