package engine

// NormalizeBins rescales bin weights so they sum to 100, preserving relative
// proportions and temperatures. A zero-sum input uses a divisor of 1, so all
// weights become 0 instead of NaN.
func NormalizeBins(bins []Coordinate) []Coordinate {
	sum := 0.0
	for _, b := range bins {
		sum += b.Y
	}
	if sum == 0 {
		sum = 1
	}

	out := make([]Coordinate, len(bins))
	for i, b := range bins {
		out[i] = Coordinate{X: b.X, Y: b.Y / sum * 100}
	}
	return out
}
