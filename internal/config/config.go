// Package config loads and validates the heatcurve scenario file: rate
// inputs, calculation mode, COP table and weather-bin text, plus logging and
// output preferences.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/gridnote/heatcurve/internal/engine"
)

// CurrentVersion is the scenario file schema version written by config init.
const CurrentVersion = "1.0"

// supportedVersions is the semver range of scenario file schemas this build
// can read. Major bumps are breaking.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// Calculation modes.
const (
	ModeTable    = "table"
	ModeSeasonal = "seasonal"
)

// ErrUnsupportedVersion indicates a scenario file written by an incompatible
// schema version.
var ErrUnsupportedVersion = errors.New("unsupported scenario file version")

// DefaultCOPTable is the starter heat pump performance curve (°F:COP).
const DefaultCOPTable = "5:1.7\n17:2.0\n32:2.6\n47:3.2\n62:3.9"

// DefaultBins is the starter heating-load distribution (°F:share).
const DefaultBins = "0:2\n10:6\n20:12\n30:20\n40:25\n50:20\n60:15"

// LoggingConfig is the logging section of the scenario file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig is the output section of the scenario file.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Config is the full scenario file.
type Config struct {
	Version  string            `yaml:"version"`
	Mode     string            `yaml:"mode"`
	Rates    engine.RateInputs `yaml:"rates"`
	COPTable string            `yaml:"cop_table"`
	Bins     string            `yaml:"bins"`
	Logging  LoggingConfig     `yaml:"logging"`
	Output   OutputConfig      `yaml:"output"`
}

// Default returns a fully populated scenario with the named default for
// every field.
func Default() *Config {
	return &Config{
		Version:  CurrentVersion,
		Mode:     ModeTable,
		Rates:    engine.DefaultRateInputs(),
		COPTable: DefaultCOPTable,
		Bins:     DefaultBins,
		Logging:  LoggingConfig{Level: "info", Format: "console"},
		Output:   OutputConfig{Format: "table"},
	}
}

// Load reads a scenario file, overlaying it on the defaults so absent fields
// keep their named default values. A missing file is not an error: the
// defaults are returned unchanged, matching the degrade-to-defaults contract
// of the calculator.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks schema version compatibility and the calculation mode.
// Rate values themselves are not validated here; the engine sanitizes them.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	switch c.Mode {
	case ModeTable, ModeSeasonal:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeTable, ModeSeasonal, c.Mode)
	}
	return nil
}

// checkVersion verifies the scenario file schema version falls inside the
// supported semver range.
func checkVersion(version string) error {
	if version == "" {
		// Pre-versioned files are treated as 1.0.
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: cannot parse %q: %w", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s is outside %s", ErrUnsupportedVersion, version, supportedVersions)
	}
	return nil
}

// EngineInput converts the scenario to the engine's input record.
func (c *Config) EngineInput() engine.Input {
	return engine.Input{
		Rates:        c.Rates,
		UseTable:     c.Mode == ModeTable,
		COPTableText: c.COPTable,
		BinsText:     c.Bins,
	}
}

// Write marshals the scenario to path. It refuses to overwrite an existing
// file unless force is set.
func (c *Config) Write(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
