package cli

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dicesim/internal/common/clock"
	"github.com/KirkDiggler/dicesim/internal/common/logging"
	"github.com/KirkDiggler/dicesim/internal/common/uuid"
	"github.com/KirkDiggler/dicesim/internal/dice"
	"github.com/KirkDiggler/dicesim/internal/render"
	"github.com/KirkDiggler/dicesim/internal/services/reroll"
	"github.com/KirkDiggler/dicesim/internal/services/simulation"
)

// Run throws the dice once and prints every round, or, in stats mode, runs the
// simulations and prints the histogram.
func Run(ctx context.Context, settings *Settings, stdout, stderr io.Writer) error {
	if settings == nil {
		return ErrConfiguration
	}

	logger := logging.New(stderr, settings.Verbose)
	defer func() { _ = logger.Sync() }()

	roller := dice.New(&dice.Config{Seed: settings.Seed})
	logger.Debug("dice ready",
		zap.Int64("seed", roller.Seed()),
		zap.Int("dice", settings.Num),
		zap.Ints("sides", settings.Sides.Expand(settings.Num)),
		zap.Stringer("keep", settings.Keep))

	rerollService, err := reroll.New(&reroll.Config{
		DiceRoller: roller,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if settings.Stats == nil {
		output, err := rerollService.RollWithChoice(ctx, &reroll.RollWithChoiceInput{
			Keeper: settings.Keep,
			Rounds: settings.Rounds,
			Num:    settings.Num,
			Sides:  settings.Sides,
		})
		if err != nil {
			return err
		}
		return render.Rounds(stdout, output.Rounds)
	}

	simulationService, err := simulation.New(&simulation.Config{
		RerollService: rerollService,
		Clock:         clock.System{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	output, err := simulationService.Run(ctx, &simulation.RunInput{
		Keeper:  settings.Keep,
		Reducer: settings.Stats,
		Rounds:  settings.Rounds,
		Num:     settings.Num,
		Sides:   settings.Sides,
		Times:   settings.Simulations,
	})
	if err != nil {
		return err
	}

	label := settings.Stats.Label()
	if settings.Counts {
		return render.Counts(stdout, label, output.Histogram)
	}
	return render.Percentages(stdout, label, output.Histogram)
}
