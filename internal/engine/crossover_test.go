package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRates() Rates {
	return NewRates(DefaultRateInputs())
}

func TestSolveCrossover_TableTooSmall(t *testing.T) {
	for _, table := range [][]Coordinate{nil, {}, {{30, 2.5}}} {
		got := SolveCrossover(table, defaultRates())
		assert.Nil(t, got.Temp)
		assert.Contains(t, got.Note, "provide a COP table")
		assert.Empty(t, got.Series)
	}
}

func TestSolveCrossover_DefaultScenario(t *testing.T) {
	got := SolveCrossover(copTable(), defaultRates())

	t.Run("parity temperature", func(t *testing.T) {
		require.NotNil(t, got.Temp)
		// COP reaches the break-even value of ~3.05 on the 32-47°F segment.
		assert.InDelta(t, 43.1, *got.Temp, 0.2)
		assert.Empty(t, got.Note)
	})

	t.Run("costs agree at the reported temperature", func(t *testing.T) {
		require.NotNil(t, got.Temp)
		rates := defaultRates()
		hp := rates.HeatPumpCostPerMMBtu(InterpolateCOP(copTable(), *got.Temp))
		assert.InDelta(t, rates.GasCostPerMMBtu, hp, 0.02)
	})

	t.Run("series spans the full default grid", func(t *testing.T) {
		// Table lies inside [-20, 65], so the grid is -20..65 inclusive.
		require.Len(t, got.Series, 86)
		assert.InDelta(t, -20, got.Series[0].Temp, 1e-12)
		assert.InDelta(t, 65, got.Series[len(got.Series)-1].Temp, 1e-12)
	})

	t.Run("gas cost is flat across the series", func(t *testing.T) {
		for _, p := range got.Series {
			assert.InDelta(t, defaultRates().GasCostPerMMBtu, p.GasCost, 1e-9)
		}
	})
}

func TestSolveCrossover_GridExtendsToTableRange(t *testing.T) {
	wide := []Coordinate{{-30, 1.0}, {80, 4.0}}
	got := SolveCrossover(wide, defaultRates())
	// Grid runs -30..80 inclusive.
	assert.Len(t, got.Series, 111)
	assert.InDelta(t, -30, got.Series[0].Temp, 1e-12)
	assert.InDelta(t, 80, got.Series[len(got.Series)-1].Temp, 1e-12)
}

func TestSolveCrossover_NoSignChange(t *testing.T) {
	t.Run("heat pump cheaper everywhere", func(t *testing.T) {
		in := DefaultRateInputs()
		in.GasSupplyRate = 3.0 // gas so expensive even COP 1.7 wins
		got := SolveCrossover(copTable(), NewRates(in))
		assert.Nil(t, got.Temp)
		assert.Equal(t, "heat pump is cheaper at all modeled temperatures", got.Note)
	})

	t.Run("gas cheaper everywhere", func(t *testing.T) {
		in := DefaultRateInputs()
		in.GasSupplyRate = 0.01
		in.GasDeliveryRate = 0.01
		got := SolveCrossover(copTable(), NewRates(in))
		assert.Nil(t, got.Temp)
		assert.Equal(t, "gas is cheaper at all modeled temperatures", got.Note)
	})
}

func TestSolveCrossover_ExactTouchCountsAsCrossing(t *testing.T) {
	// Build a table whose HP cost equals the gas cost exactly at 40°F.
	rates := defaultRates()
	breakEvenCOP := kwhPerMMBtu * rates.ElectricHeatRate / rates.GasCostPerMMBtu
	table := []Coordinate{{0, breakEvenCOP / 2}, {40, breakEvenCOP}, {60, breakEvenCOP * 2}}

	got := SolveCrossover(table, rates)
	require.NotNil(t, got.Temp)
	assert.InDelta(t, 40, *got.Temp, 0.5)
}

func TestSolveCrossover_FirstCrossingWins(t *testing.T) {
	// A non-monotonic table that dips back below break-even: only the first
	// crossing is reported.
	rates := defaultRates()
	breakEvenCOP := kwhPerMMBtu * rates.ElectricHeatRate / rates.GasCostPerMMBtu
	table := []Coordinate{
		{0, breakEvenCOP * 0.5},
		{20, breakEvenCOP * 1.5},
		{40, breakEvenCOP * 0.5},
		{60, breakEvenCOP * 1.5},
	}

	got := SolveCrossover(table, rates)
	require.NotNil(t, got.Temp)
	assert.Less(t, *got.Temp, 20.0)
	assert.Greater(t, *got.Temp, 0.0)
}

func TestZeroCrossing(t *testing.T) {
	t.Run("interpolates between grid points", func(t *testing.T) {
		// diff goes from -1 at t=10 to +3 at t=11: zero at 10.25.
		assert.InDelta(t, 10.25, zeroCrossing(10, 11, -1, 3), 1e-12)
	})

	t.Run("near-zero denominator matches the earlier point", func(t *testing.T) {
		assert.InDelta(t, 10, zeroCrossing(10, 11, 0, 0), 1e-12)
		assert.False(t, math.IsNaN(zeroCrossing(10, 11, 1e-15, 1e-15)))
	})
}
