package engine

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ParsePairs turns free-form "x:y" text into a sorted coordinate list.
// Entries are separated by newlines or commas; each entry is split on its
// first colon and both sides parsed as real numbers. Malformed or non-finite
// entries are dropped rather than failing the whole parse, so the result may
// be shorter than the input, or empty, which is valid downstream input.
func ParsePairs(text string) []Coordinate {
	entries := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})

	out := make([]Coordinate, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		xs, ys, found := strings.Cut(entry, ":")
		if !found {
			continue
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if errX != nil || errY != nil {
			continue
		}
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}

		out = append(out, Coordinate{X: x, Y: y})
	}

	// Stable sort keeps first-entry-wins semantics for duplicate X values.
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// FormatPairs serializes coordinates back to the newline-separated "x:y"
// form accepted by ParsePairs.
func FormatPairs(pairs []Coordinate) string {
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = strconv.FormatFloat(p.X, 'g', -1, 64) + ":" +
			strconv.FormatFloat(p.Y, 'g', -1, 64)
	}
	return strings.Join(lines, "\n")
}
