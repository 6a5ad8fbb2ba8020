package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	t.Run("newline separated", func(t *testing.T) {
		got := ParsePairs("17:2.0\n47:3.2\n5:1.7")
		require.Len(t, got, 3)
		assert.Equal(t, []Coordinate{{5, 1.7}, {17, 2.0}, {47, 3.2}}, got)
	})

	t.Run("comma separated with whitespace", func(t *testing.T) {
		got := ParsePairs("  17 : 2.0 , 47:3.2  ")
		assert.Equal(t, []Coordinate{{17, 2.0}, {47, 3.2}}, got)
	})

	t.Run("mixed separators", func(t *testing.T) {
		got := ParsePairs("17:2.0,47:3.2\n62:3.9")
		require.Len(t, got, 3)
	})

	t.Run("malformed entries are dropped not fatal", func(t *testing.T) {
		got := ParsePairs("17:2.0\nbogus\n47\n:3\nx:y\n62:3.9")
		assert.Equal(t, []Coordinate{{17, 2.0}, {62, 3.9}}, got)
	})

	t.Run("non-finite values are dropped", func(t *testing.T) {
		got := ParsePairs("17:NaN\nInf:2.0\n32:2.6")
		assert.Equal(t, []Coordinate{{32, 2.6}}, got)
	})

	t.Run("empty and garbage input degrade to empty", func(t *testing.T) {
		assert.Empty(t, ParsePairs(""))
		assert.Empty(t, ParsePairs(",,,\n\n"))
		assert.Empty(t, ParsePairs("no pairs here"))
	})

	t.Run("splits on first colon only", func(t *testing.T) {
		// "1:2:3" parses x=1 and fails on "2:3", dropping the entry.
		assert.Empty(t, ParsePairs("1:2:3"))
	})

	t.Run("negative temperatures sort correctly", func(t *testing.T) {
		got := ParsePairs("5:1.7\n-13:1.2\n-20:1.0")
		assert.Equal(t, []Coordinate{{-20, 1.0}, {-13, 1.2}, {5, 1.7}}, got)
	})
}

func TestParsePairs_SortInvariant(t *testing.T) {
	inputs := []string{
		"47:3.2\n17:2.0\n5:1.7\n62:3.9",
		"1:1,0:0,-1:-1",
		"3:1\n3:2\n1:9",
	}
	for _, in := range inputs {
		got := ParsePairs(in)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i].X, got[i-1].X, "input %q", in)
		}
	}
}

func TestParsePairs_DuplicateXKeepsEntryOrder(t *testing.T) {
	got := ParsePairs("3:1\n3:2\n1:9")
	require.Len(t, got, 3)
	// Stable sort: the 3:1 entry stays ahead of 3:2.
	assert.Equal(t, Coordinate{3, 1}, got[1])
	assert.Equal(t, Coordinate{3, 2}, got[2])
}

func TestFormatPairs_RoundTrip(t *testing.T) {
	texts := []string{
		"5:1.7\n17:2.0\n32:2.6\n47:3.2\n62:3.9",
		"-20:1, 0:1.5, 40:3",
		"",
	}
	for _, text := range texts {
		parsed := ParsePairs(text)
		again := ParsePairs(FormatPairs(parsed))
		assert.Equal(t, parsed, again, "round trip of %q", text)
	}
}
