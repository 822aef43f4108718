package simulation

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/common/clock"
	"github.com/KirkDiggler/dicesim/internal/common/uuid"
	"github.com/KirkDiggler/dicesim/internal/keep"
	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/reduce"
	"github.com/KirkDiggler/dicesim/internal/services/reroll"
	"github.com/KirkDiggler/dicesim/internal/stats"
)

// Config holds configuration for the simulation service
type Config struct {
	// RerollService plays out the rounds of each simulation
	RerollService reroll.Service

	// Clock times each run
	Clock clock.Clock

	// UUIDGenerator names each run
	UUIDGenerator uuid.Generator

	// Logger is optional
	Logger *zap.Logger
}

// RunInput contains parameters for a batch of simulations
type RunInput struct {
	// Keeper picks the dice kept between rounds; nil keeps nothing
	Keeper keep.Keeper

	// Reducer turns each final outcome into a value; nil sums the dice
	Reducer reduce.Reducer

	// Rounds per simulation, including the first throw
	Rounds int

	// Num is the number of dice
	Num int

	// Sides is the side configuration of the dice
	Sides models.Sides

	// Times is the number of simulations to run
	Times int
}

// RunOutput contains the aggregated results of a batch
type RunOutput struct {
	// RunID identifies this batch in logs
	RunID string

	// Histogram counts each reduced value; its total equals Times
	Histogram *stats.Histogram

	// StartedAt is when the batch began
	StartedAt time.Time

	// Elapsed is how long the batch took
	Elapsed time.Duration
}
