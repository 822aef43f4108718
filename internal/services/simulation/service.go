package simulation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/common/clock"
	"github.com/KirkDiggler/dicesim/internal/common/logging"
	"github.com/KirkDiggler/dicesim/internal/common/uuid"
	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/reduce"
	"github.com/KirkDiggler/dicesim/internal/services/reroll"
	"github.com/KirkDiggler/dicesim/internal/stats"
)

// service implements the Service interface
type service struct {
	rerollService reroll.Service
	clock         clock.Clock
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// New creates a new simulation service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RerollService == nil {
		return nil, ErrNilRerollService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		rerollService: cfg.RerollService,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logging.OrNop(cfg.Logger).Named("simulation"),
	}, nil
}

// Run performs input.Times independent simulations and counts the reduced values
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Times < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTimes, input.Times)
	}

	reducer := input.Reducer
	if reducer == nil {
		reducer = reduce.Reduction{Kind: reduce.KindSum}
	}

	runID := s.uuidGenerator.NewRunID()
	logger := s.logger.With(zap.String("run_id", runID))
	startedAt := s.clock.Now()

	logger.Debug("simulation started",
		zap.Int("times", input.Times),
		zap.Int("rounds", input.Rounds),
		zap.Int("dice", input.Num))

	rollInput := &reroll.RollWithChoiceInput{
		Keeper: input.Keeper,
		Rounds: input.Rounds,
		Num:    input.Num,
		Sides:  input.Sides,
	}

	pipeline := func() (models.Value, error) {
		if err := ctx.Err(); err != nil {
			return models.Value{}, err
		}
		outcome, err := s.rerollService.LastOnly(ctx, rollInput)
		if err != nil {
			return models.Value{}, err
		}
		return reducer.Reduce(outcome), nil
	}

	histogram, err := stats.Aggregate(Draws(pipeline, input.Times).All())
	if err != nil {
		logger.Warn("simulation aborted", zap.Error(err))
		return nil, fmt.Errorf("simulation %s: %w", runID, err)
	}

	elapsed := clock.Elapsed(s.clock, startedAt)
	logger.Debug("simulation finished",
		zap.Int("distinct", histogram.Len()),
		zap.Int("total", histogram.Total()),
		zap.Duration("elapsed", elapsed))

	return &RunOutput{
		RunID:     runID,
		Histogram: histogram,
		StartedAt: startedAt,
		Elapsed:   elapsed,
	}, nil
}
