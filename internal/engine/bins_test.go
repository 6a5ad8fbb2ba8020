package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBins(t *testing.T) {
	t.Run("weights sum to 100", func(t *testing.T) {
		got := NormalizeBins([]Coordinate{{10, 1}, {30, 2}, {50, 1}})
		sum := 0.0
		for _, b := range got {
			sum += b.Y
		}
		assert.InDelta(t, 100, sum, 1e-9)
	})

	t.Run("proportions and temperatures preserved", func(t *testing.T) {
		got := NormalizeBins([]Coordinate{{10, 1}, {30, 3}})
		require.Len(t, got, 2)
		assert.InDelta(t, 25, got[0].Y, 1e-9)
		assert.InDelta(t, 75, got[1].Y, 1e-9)
		assert.InDelta(t, 10, got[0].X, 1e-12)
		assert.InDelta(t, 30, got[1].X, 1e-12)
	})

	t.Run("already normalized input is unchanged", func(t *testing.T) {
		got := NormalizeBins([]Coordinate{{20, 40}, {40, 60}})
		assert.InDelta(t, 40, got[0].Y, 1e-9)
		assert.InDelta(t, 60, got[1].Y, 1e-9)
	})

	t.Run("zero sum yields zeros not NaN", func(t *testing.T) {
		got := NormalizeBins([]Coordinate{{10, 0}, {30, 0}})
		require.Len(t, got, 2)
		for _, b := range got {
			assert.InDelta(t, 0, b.Y, 1e-12)
			assert.False(t, b.Y != b.Y, "weight must not be NaN")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, NormalizeBins(nil))
	})
}
