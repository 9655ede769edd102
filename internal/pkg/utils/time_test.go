package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("parses midnight", func(t *testing.T) {
		minutes, err := ParseClock("00:00")
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)
	})

	t.Run("parses afternoon time", func(t *testing.T) {
		minutes, err := ParseClock("14:30")
		require.NoError(t, err)
		assert.Equal(t, 870, minutes)
	})

	t.Run("parses end of day", func(t *testing.T) {
		minutes, err := ParseClock("23:59")
		require.NoError(t, err)
		assert.Equal(t, 1439, minutes)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := ParseClock("25:00")
		assert.Error(t, err)

		_, err = ParseClock("9:00 AM")
		assert.Error(t, err)
	})
}

func TestFormatClock(t *testing.T) {
	t.Run("formats with zero padding", func(t *testing.T) {
		assert.Equal(t, "07:05", FormatClock(425))
		assert.Equal(t, "00:00", FormatClock(0))
		assert.Equal(t, "23:59", FormatClock(1439))
	})

	t.Run("wraps values past midnight", func(t *testing.T) {
		assert.Equal(t, "00:30", FormatClock(1470))
	})

	t.Run("wraps negative values", func(t *testing.T) {
		assert.Equal(t, "23:15", FormatClock(-45))
	})
}
