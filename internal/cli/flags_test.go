package cli

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags() (*flag.FlagSet, map[string]*listFlag, *int) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	num := fs.Int("n", 1, "")
	lists := map[string]*listFlag{
		"ss":   {},
		"keep": {},
	}
	for name, l := range lists {
		fs.Var(l, name, "")
	}
	return fs, lists, num
}

func TestParseFlags_CollectsWordsUntilNextFlag(t *testing.T) {
	fs, lists, num := newTestFlags()

	err := parseFlags(fs, lists, []string{"-ss", "4", "6", "-n", "2", "--keep", "value", "-3"})
	require.NoError(t, err)

	assert.Equal(t, 2, *num)
	assert.True(t, lists["ss"].set)
	assert.Equal(t, []string{"4", "6"}, lists["ss"].values)
	assert.Equal(t, []string{"value", "-3"}, lists["keep"].values)
}

func TestParseFlags_FlagWithoutWords(t *testing.T) {
	fs, lists, _ := newTestFlags()

	require.NoError(t, parseFlags(fs, lists, []string{"--keep"}))
	assert.True(t, lists["keep"].set)
	assert.Empty(t, lists["keep"].values)
	assert.False(t, lists["ss"].set)
}

func TestParseFlags_RejectsStrayWords(t *testing.T) {
	fs, lists, _ := newTestFlags()

	err := parseFlags(fs, lists, []string{"stray"})
	assert.ErrorIs(t, err, ErrUnexpectedArgument)

	fs, lists, _ = newTestFlags()
	err = parseFlags(fs, lists, []string{"-n", "3", "4"})
	assert.ErrorIs(t, err, ErrUnexpectedArgument)
}
