package simulation

import "context"

// Service defines the interface for running many simulations
type Service interface {
	// Run repeats the roll, reroll and reduce pipeline and aggregates the results
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}
