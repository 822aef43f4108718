package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/KirkDiggler/dicesim/internal/stats"
)

func TestRounds(t *testing.T) {
	var buf bytes.Buffer
	err := Rounds(&buf, []models.Outcome{{6, 6, 3}, {6, 3, 2}})
	require.NoError(t, err)
	assert.Equal(t, "[6, 6, 3]\n[6, 3, 2]\n", buf.String())
}

func TestCounts(t *testing.T) {
	h := stats.NewHistogram()
	h.Add(models.Scalar(7))
	h.Add(models.Scalar(3))
	h.Add(models.Scalar(7))

	var buf bytes.Buffer
	require.NoError(t, Counts(&buf, "Total sum of dice values in a throw", h))
	assert.Equal(t,
		"Total sum of dice values in a throw:\n"+
			"3: 1 out of 3\n"+
			"7: 2 out of 3\n",
		buf.String())
}

func TestPercentages(t *testing.T) {
	h := stats.NewHistogram()
	h.Add(models.Tuple(1, 2))
	h.Add(models.Tuple(1))
	h.Add(models.Tuple(1))
	h.Add(models.Tuple(1, 2))
	h.Add(models.Tuple(1, 2))
	h.Add(models.Tuple(1, 2))

	var buf bytes.Buffer
	require.NoError(t, Percentages(&buf, "Ordered dice values", h))
	assert.Equal(t,
		"Ordered dice values:\n"+
			"(1,): 33.33 %\n"+
			"(1, 2): 66.67 %\n",
		buf.String())
}

func TestPercentages_EmptyHistogram(t *testing.T) {
	var buf bytes.Buffer
	err := Percentages(&buf, "Dice values", stats.NewHistogram())
	assert.ErrorIs(t, err, stats.ErrEmptyHistogram)
	assert.Empty(t, buf.String())
}
