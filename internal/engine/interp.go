package engine

// InterpolateCOP looks up the heat pump COP at temp by piecewise-linear
// interpolation over a sorted table, with flat extrapolation beyond either
// end. An empty table yields DefaultCOP. Ties at an exact sample boundary
// resolve to the first bracketing pair.
func InterpolateCOP(table []Coordinate, temp float64) float64 {
	if len(table) == 0 {
		return DefaultCOP
	}

	if temp <= table[0].X {
		return table[0].Y
	}
	last := table[len(table)-1]
	if temp >= last.X {
		return last.Y
	}

	for i := 0; i+1 < len(table); i++ {
		a, b := table[i], table[i+1]
		if a.X <= temp && temp <= b.X {
			span := b.X - a.X
			if span == 0 {
				// Degenerate zero-width interval: treat the divisor as 1,
				// which collapses to a.Y since the numerator is also zero.
				span = 1
			}
			return a.Y + (temp-a.X)/span*(b.Y-a.Y)
		}
	}

	// Unreachable for sorted input; flat warm-extrapolation as a backstop.
	return last.Y
}
