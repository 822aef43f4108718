package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/dicesim/internal/keep"
	"github.com/KirkDiggler/dicesim/internal/reduce"
)

// usage lists the public flags; --seed and -v stay hidden
func usage(w io.Writer) {
	fmt.Fprintf(w, `usage: dice [-h] [-n NUM] [-s SIDES] [-ss [SIDES ...]] [-r REROLL]
            [--keep [STRATEGY ...]] [--stats [REDUCE ...]] [-N SIMULATIONS]
            [--counts]

Simulate various dice throw situations.

options:
  -h, --help            Show this help message and exit.
  -n NUM                Specify the number of dice to throw.
  -s SIDES              Specify the number of sides all dice have.
  -ss [SIDES ...]       Specify the number of sides for each individual die.
  -r REROLL             Perform multiple rerolls (stats only count last roll).
  --keep [STRATEGY ...]
                        Choose a keeping strategy when performing rerolls.
                        Options are: %s.
  --stats [REDUCE ...]  Performs multiple throws and outputs cumulative
                        results. Provide a parameter to choose an approach
                        for reducing a dice throw to a single value of
                        interest. Options are: %s.
  -N SIMULATIONS        Set the number of simulations to run for statistical
                        results.
  --counts              Print actual event counts instead of percentages in
                        the statistical results.
`, strings.Join(keep.Names(), ", "), strings.Join(reduce.Names(), ", "))
}
