package stepper

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSequence(t *testing.T) {
	t.Run("valid range endpoints", func(t *testing.T) {
		assert.NoError(t, ValidateSequence(3, -1))
		assert.NoError(t, ValidateSequence(3, 3))
		assert.NoError(t, ValidateSequence(3, 1.75))
	})

	t.Run("empty sequence", func(t *testing.T) {
		err := ValidateSequence(0, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Contains(t, err.Error(), "step sequence must not be empty")
	})

	t.Run("position above bound", func(t *testing.T) {
		err := ValidateSequence(4, 4.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "position out of range")
		assert.Contains(t, err.Error(), "4.5")
		assert.Contains(t, err.Error(), "[-1, 4]")
	})

	t.Run("position below sentinel", func(t *testing.T) {
		err := ValidateSequence(4, -2)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("NaN position", func(t *testing.T) {
		assert.Error(t, ValidateSequence(4, math.NaN()))
	})

	t.Run("short icon list", func(t *testing.T) {
		err := ValidateSequence(3, 0, IconList(2))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "icons")
		assert.Contains(t, err.Error(), "expected at least 3, got 2")
	})

	t.Run("longer description list is fine", func(t *testing.T) {
		assert.NoError(t, ValidateSequence(3, 0, DescriptionList(5)))
	})

	t.Run("durations must match exactly", func(t *testing.T) {
		assert.NoError(t, ValidateSequence(3, 0, DurationList(3)))
		err := ValidateSequence(3, 0, DurationList(4))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 3, got 4")
	})

	t.Run("collects every issue", func(t *testing.T) {
		err := ValidateSequence(0, 5, IconList(0))
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Len(t, cfgErr.Issues, 2)
		assert.Equal(t, "steps", cfgErr.Issues[0].Field)
		assert.Equal(t, "position", cfgErr.Issues[1].Field)
	})
}
