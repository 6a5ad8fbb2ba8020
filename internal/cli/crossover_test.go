package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridnote/heatcurve/internal/engine"
)

func TestCrossover_JSON(t *testing.T) {
	out, err := runCommand(t, "crossover", "--output", "json")
	require.NoError(t, err)

	var got engine.Crossover
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.NotNil(t, got.Temp)
	assert.InDelta(t, 43.1, *got.Temp, 0.2)
	assert.Len(t, got.Series, 86)
}

func TestCrossover_NDJSON(t *testing.T) {
	out, err := runCommand(t, "crossover", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 86)

	var first engine.CrossoverPoint
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.InDelta(t, -20, first.Temp, 1e-9)
}

func TestCrossover_Table(t *testing.T) {
	out, err := runCommand(t, "crossover", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Cost parity at")
}

func TestCrossover_TableWithSeries(t *testing.T) {
	out, err := runCommand(t, "crossover", "--output", "table", "--series")
	require.NoError(t, err)
	assert.Contains(t, out, "°F")
	assert.Contains(t, out, "gas $")
}
