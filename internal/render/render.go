package render

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/stats"
)

// Rounds writes one line per reroll round
func Rounds(w io.Writer, rounds []models.Outcome) error {
	for _, outcome := range rounds {
		if _, err := fmt.Fprintln(w, outcome.String()); err != nil {
			return err
		}
	}
	return nil
}

// Counts writes the label followed by "value: count out of total" lines
func Counts(w io.Writer, label string, h *stats.Histogram) error {
	if err := writeLabel(w, label); err != nil {
		return err
	}

	total := h.Total()
	for _, e := range h.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %d out of %d\n", e.Value, e.Count, total); err != nil {
			return err
		}
	}
	return nil
}

// Percentages writes the label followed by "value: pp.pp %" lines
func Percentages(w io.Writer, label string, h *stats.Histogram) error {
	probs, err := stats.Probabilities(h)
	if err != nil {
		return err
	}

	if err := writeLabel(w, label); err != nil {
		return err
	}

	for _, p := range probs {
		if _, err := fmt.Fprintf(w, "%s: %.2f %%\n", p.Value, p.Percent); err != nil {
			return err
		}
	}
	return nil
}

func writeLabel(w io.Writer, label string) error {
	_, err := fmt.Fprintf(w, "%s:\n", label)
	return err
}
