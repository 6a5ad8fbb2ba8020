package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridnote/heatcurve/internal/engine"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ModeTable, cfg.Mode)
		assert.InDelta(t, 0.95, cfg.Rates.FurnaceAFUE, 1e-12)
	})

	t.Run("partial file overlays defaults", func(t *testing.T) {
		path := writeScenario(t, `
version: "1.0"
mode: seasonal
rates:
  gas_supply_rate: 0.61
  heat_load_mmbtu: 80
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ModeSeasonal, cfg.Mode)
		assert.InDelta(t, 0.61, cfg.Rates.GasSupplyRate, 1e-12)
		assert.InDelta(t, 80, cfg.Rates.HeatLoadMMBtu, 1e-12)
		// Untouched fields keep their defaults.
		assert.InDelta(t, 0.2134, cfg.Rates.GasDeliveryRate, 1e-12)
		assert.Equal(t, DefaultCOPTable, cfg.COPTable)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := writeScenario(t, "mode: [unclosed")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid mode is an error", func(t *testing.T) {
		path := writeScenario(t, "mode: nuclear")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mode")
	})
}

func TestVersionCompatibility(t *testing.T) {
	cases := []struct {
		version string
		wantErr bool
	}{
		{"1.0", false},
		{"1.0.0", false},
		{"1.9.3", false},
		{"", false}, // pre-versioned files pass
		{"2.0", true},
		{"0.9", true},
		{"garbage", true},
	}
	for _, tc := range cases {
		t.Run("version "+tc.version, func(t *testing.T) {
			cfg := Default()
			cfg.Version = tc.version
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEngineInput(t *testing.T) {
	cfg := Default()
	in := cfg.EngineInput()
	assert.True(t, in.UseTable)
	assert.Equal(t, cfg.COPTable, in.COPTableText)
	assert.Equal(t, cfg.Bins, in.BinsText)
	assert.Equal(t, engine.DefaultRateInputs(), in.Rates)

	cfg.Mode = ModeSeasonal
	assert.False(t, cfg.EngineInput().UseTable)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatcurve.yaml")

	require.NoError(t, Default().Write(path, false))

	t.Run("round trips through Load", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		err := Default().Write(path, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("force overwrites", func(t *testing.T) {
		cfg := Default()
		cfg.Mode = ModeSeasonal
		require.NoError(t, cfg.Write(path, true))
		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ModeSeasonal, got.Mode)
	})
}

func TestDefaultTableAndBinsParse(t *testing.T) {
	table := engine.ParsePairs(DefaultCOPTable)
	assert.Len(t, table, 5)
	bins := engine.ParsePairs(DefaultBins)
	assert.Len(t, bins, 7)
	sum := 0.0
	for _, b := range bins {
		sum += b.Y
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
