package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/dicesim/internal/dice"
	"github.com/KirkDiggler/dicesim/internal/keep"
	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/reduce"
)

// Settings is a fully validated command line
type Settings struct {
	// Num is the number of dice thrown
	Num int

	// Sides of every die
	Sides models.Sides

	// Rounds of rerolls, including the first throw
	Rounds int

	// Keep decides which dice survive between rounds
	Keep keep.Strategy

	// Stats selects simulation mode when set
	Stats *reduce.Reduction

	// Simulations to run in stats mode
	Simulations int

	// Counts prints raw counts instead of percentages
	Counts bool

	// Seed fixes the random sequence when set
	Seed *int64

	// Verbose enables debug logging on stderr
	Verbose bool
}

// ParseSettings reads environment defaults, then parses args.
// Help requests return flag.ErrHelp; every other failure wraps ErrConfiguration.
func ParseSettings(args []string, stderr io.Writer) (*Settings, error) {
	cfg := Config{}
	if err := ParseConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	seed := &int64Flag{}
	if cfg.Seed != "" {
		if err := seed.Set(cfg.Seed); err != nil {
			return nil, fmt.Errorf("%w: DICE_SEED must be an integer, got %q", ErrConfiguration, cfg.Seed)
		}
	}

	var (
		multiSides listFlag
		keepArgs   listFlag
		statsArgs  listFlag
		counts     bool
	)

	fs := flag.NewFlagSet("dice", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }

	fs.IntVar(&cfg.Num, "n", cfg.Num, "Specify the number of dice to throw.")
	fs.IntVar(&cfg.Sides, "s", cfg.Sides, "Specify the number of sides all dice have.")
	fs.Var(&multiSides, "ss", "Specify the number of sides for each individual die.")
	fs.IntVar(&cfg.Rounds, "r", cfg.Rounds, "Perform multiple rerolls (stats only count last roll).")
	fs.Var(&keepArgs, "keep", "Choose a keeping strategy when performing rerolls.")
	fs.Var(&statsArgs, "stats", "Performs multiple throws and outputs cumulative results.")
	fs.IntVar(&cfg.Simulations, "N", cfg.Simulations, "Set the number of simulations to run for statistical results.")
	fs.BoolVar(&counts, "counts", false, "Print actual event counts instead of percentages.")
	fs.Var(seed, "seed", "Set the seed value used for randomizing results.")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log debug output to stderr.")

	lists := map[string]*listFlag{
		"ss":    &multiSides,
		"keep":  &keepArgs,
		"stats": &statsArgs,
	}
	if err := parseFlags(fs, lists, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	settings := &Settings{
		Num:         cfg.Num,
		Sides:       models.SharedSides(cfg.Sides),
		Rounds:      cfg.Rounds,
		Simulations: cfg.Simulations,
		Counts:      counts,
		Seed:        seed.value,
		Verbose:     cfg.Verbose,
	}

	if settings.Num < 0 {
		return nil, fmt.Errorf("%w: '-n' cannot be negative, got %d", ErrConfiguration, settings.Num)
	}

	if settings.Rounds < 1 {
		return nil, fmt.Errorf("%w: '-r' must be at least 1, got %d", ErrConfiguration, settings.Rounds)
	}

	if multiSides.set {
		sides, err := parseSides(multiSides.values, settings.Num)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		settings.Sides = sides
	} else if cfg.Sides < 1 {
		return nil, fmt.Errorf("%w: '-s' %w, got %d", ErrConfiguration, dice.ErrInvalidSides, cfg.Sides)
	}

	var keepName string
	if len(keepArgs.values) > 0 {
		keepName = keepArgs.values[0]
	}
	var keepParams []string
	if len(keepArgs.values) > 1 {
		keepParams = keepArgs.values[1:]
	}
	strategy, err := keep.Parse(keepName, keepParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	settings.Keep = strategy

	if statsArgs.set {
		reduction, err := reduce.Parse(statsArgs.values)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		settings.Stats = &reduction

		if settings.Simulations < 1 {
			return nil, fmt.Errorf("%w: '-N' must be at least 1, got %d", ErrConfiguration, settings.Simulations)
		}
	}

	return settings, nil
}

func parseSides(values []string, num int) (models.Sides, error) {
	if len(values) != num {
		return models.Sides{}, fmt.Errorf("'-ss' %w: got %d for %d dice", dice.ErrSidesMismatch, len(values), num)
	}

	sides := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.Sides{}, fmt.Errorf("'-ss' expects integers, got %q", v)
		}
		if n < 1 {
			return models.Sides{}, fmt.Errorf("'-ss' %w, got %d", dice.ErrInvalidSides, n)
		}
		sides = append(sides, n)
	}
	return models.PerDieSides(sides...), nil
}
