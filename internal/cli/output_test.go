package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridnote/heatcurve/internal/engine"
)

func TestParseOutputFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "ndjson"} {
		got, err := ParseOutputFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(valid), got)
	}

	for _, invalid := range []string{"", "yaml", "TABLE", "csv"} {
		_, err := ParseOutputFormat(invalid)
		assert.Error(t, err, "format %q", invalid)
	}
}

func TestWriteBinsNDJSON(t *testing.T) {
	res := engine.Result{Bins: []engine.BinRow{
		{Temp: 20, Fuel: engine.FuelGas},
		{Temp: 40, Fuel: engine.FuelHeatPump},
	}}

	var buf bytes.Buffer
	require.NoError(t, writeBinsNDJSON(&buf, res))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"fuel":"gas"`)
	assert.Contains(t, string(lines[1]), `"fuel":"heat pump"`)
}

func TestWriteResultJSON_StampsRunID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResultJSON(&buf, "RUN42", engine.Result{Baseline: 1}))
	assert.Contains(t, buf.String(), `"runId": "RUN42"`)
	assert.Contains(t, buf.String(), `"generatedAt"`)
}
