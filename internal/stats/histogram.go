package stats

import (
	"iter"
	"slices"

	"github.com/KirkDiggler/dicesim/internal/models"
)

// Entry is one histogram bin
type Entry struct {
	Value models.Value
	Count int
}

// Probability is a histogram bin expressed as a share of all events
type Probability struct {
	Value   models.Value
	Count   int
	Percent float64
}

// Histogram counts occurrences of each distinct reduced value
type Histogram struct {
	bins  map[string]*Entry
	total int
}

// NewHistogram creates an empty histogram
func NewHistogram() *Histogram {
	return &Histogram{
		bins: make(map[string]*Entry),
	}
}

// Add records one occurrence of value
func (h *Histogram) Add(value models.Value) {
	key := value.Key()
	bin, ok := h.bins[key]
	if !ok {
		bin = &Entry{Value: value}
		h.bins[key] = bin
	}
	bin.Count++
	h.total++
}

// Count returns the number of occurrences of value
func (h *Histogram) Count(value models.Value) int {
	if bin, ok := h.bins[value.Key()]; ok {
		return bin.Count
	}
	return 0
}

// Total returns the number of events recorded
func (h *Histogram) Total() int {
	return h.total
}

// Len returns the number of distinct values
func (h *Histogram) Len() int {
	return len(h.bins)
}

// Entries returns the bins in ascending value order
func (h *Histogram) Entries() []Entry {
	entries := make([]Entry, 0, len(h.bins))
	for _, bin := range h.bins {
		entries = append(entries, *bin)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return a.Value.Compare(b.Value)
	})
	return entries
}

// Aggregate consumes values until the sequence ends or yields an error
func Aggregate(values iter.Seq2[models.Value, error]) (*Histogram, error) {
	h := NewHistogram()
	for value, err := range values {
		if err != nil {
			return nil, err
		}
		h.Add(value)
	}
	return h, nil
}

// Probabilities converts counts to percentages of the total, in ascending value order
func Probabilities(h *Histogram) ([]Probability, error) {
	if h == nil || h.Total() == 0 {
		return nil, ErrEmptyHistogram
	}

	total := float64(h.Total())
	entries := h.Entries()
	out := make([]Probability, 0, len(entries))
	for _, e := range entries {
		out = append(out, Probability{
			Value:   e.Value,
			Count:   e.Count,
			Percent: 100 * float64(e.Count) / total,
		})
	}
	return out, nil
}
