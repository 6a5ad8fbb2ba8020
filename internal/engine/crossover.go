package engine

import "math"

// Crossover note texts. These are informational fallbacks, not errors: an
// absent crossover temperature is a legitimate answer.
const (
	noteNeedTable    = "provide a COP table with at least two points to locate a crossover temperature"
	noteHPAlways     = "heat pump is cheaper at all modeled temperatures"
	noteGasAlways    = "gas is cheaper at all modeled temperatures"
	noteOutsideRange = "crossover lies outside the modeled temperature range"
)

const (
	// The scan grid always covers at least this range; a wider COP table
	// extends it.
	crossoverGridFloor = -20.0
	crossoverGridCeil  = 65.0

	// zeroDenomEps guards the zero-crossing interpolation: below it the two
	// grid diffs are considered equal and the earlier point is an exact match.
	zeroDenomEps = 1e-12
)

// SolveCrossover finds the outdoor temperature where heat pump and gas cost
// per unit heat are equal, by sign-change bisection over an integer-degree
// grid spanning min(-20, lowest table temp) to max(65, highest table temp).
// It also materializes the full cost-curve series across the grid for
// charting, regardless of whether a crossing exists.
func SolveCrossover(table []Coordinate, rates Rates) Crossover {
	if len(table) < 2 {
		return Crossover{Note: noteNeedTable}
	}

	lo := math.Min(crossoverGridFloor, table[0].X)
	hi := math.Max(crossoverGridCeil, table[len(table)-1].X)

	out := Crossover{Series: make([]CrossoverPoint, 0, int(hi-lo)+1)}
	allBelow, allAbove := true, true

	prevDiff := math.NaN()
	prevTemp := lo
	for t := lo; t <= hi; t++ {
		hp := rates.HeatPumpCostPerMMBtu(InterpolateCOP(table, t))
		out.Series = append(out.Series, CrossoverPoint{
			Temp:         t,
			HeatPumpCost: hp,
			GasCost:      rates.GasCostPerMMBtu,
		})

		diff := hp - rates.GasCostPerMMBtu
		if diff < 0 {
			allAbove = false
		}
		if diff > 0 {
			allBelow = false
		}

		if out.Temp == nil && !math.IsNaN(prevDiff) && signChange(prevDiff, diff) {
			x := zeroCrossing(prevTemp, t, prevDiff, diff)
			out.Temp = &x
		}

		prevDiff = diff
		prevTemp = t
	}

	if out.Temp == nil {
		switch {
		case allBelow:
			out.Note = noteHPAlways
		case allAbove:
			out.Note = noteGasAlways
		default:
			out.Note = noteOutsideRange
		}
	}
	return out
}

// signChange reports whether the cost difference crosses or touches zero
// between two consecutive grid points.
func signChange(prev, cur float64) bool {
	if prev == 0 || cur == 0 {
		return true
	}
	return (prev < 0) != (cur < 0)
}

// zeroCrossing linearly interpolates the temperature where the difference
// reaches zero between two grid points. A near-zero denominator means the
// two diffs are effectively equal; the earlier point is then an exact match.
func zeroCrossing(t0, t1, d0, d1 float64) float64 {
	denom := d1 - d0
	if math.Abs(denom) < zeroDenomEps {
		return t0
	}
	frac := -d0 / denom
	return t0 + frac*(t1-t0)
}
