package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_ReadsEnv(t *testing.T) {
	t.Setenv("DICE_ROUNDS", "3")
	t.Setenv("DICE_SIMULATIONS", "250")
	t.Setenv("DICE_VERBOSE", "true")

	cfg := Config{}
	require.NoError(t, ParseConfig(&cfg))
	assert.Equal(t, 1, cfg.Num)
	assert.Equal(t, 6, cfg.Sides)
	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, 250, cfg.Simulations)
	assert.True(t, cfg.Verbose)
}

func TestParseConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("DICE_NUM", "lots")

	err := ParseConfig(&Config{})
	assert.Error(t, err)

	_, err = parse(t)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestParseConfig_RejectsNilTarget(t *testing.T) {
	assert.Error(t, ParseConfig(nil))
}
