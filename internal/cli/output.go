package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gridnote/heatcurve/internal/engine"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputTable, OutputJSON, OutputNDJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be table, json, or ndjson", s)
	}
}

// reportEnvelope wraps an engine result for JSON output. The run ID and
// timestamp are stamped here, in the presentation layer, so the engine
// result itself stays deterministic for identical input.
type reportEnvelope struct {
	RunID       string        `json:"runId"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Result      engine.Result `json:"result"`
}

// writeResultJSON writes the full result as one indented JSON document.
func writeResultJSON(w io.Writer, runID string, res engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reportEnvelope{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Result:      res,
	})
}

// writeBinsNDJSON streams the dispatch matrix one JSON object per line,
// the format chart and spreadsheet pipelines ingest.
func writeBinsNDJSON(w io.Writer, res engine.Result) error {
	enc := json.NewEncoder(w)
	for _, row := range res.Bins {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
