package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bank-sim/bank-sim/sim/trace"
)

// Config holds run configuration, loadable from a YAML file.
// Zero values select the defaults: growable event queue, no tracing.
type Config struct {
	// Capacity bounds the event queue. 0 = growable (never rejects);
	// > 0 = legacy bounded heap that fails the run when exhausted.
	Capacity    int    `yaml:"capacity"`
	TraceLevel  string `yaml:"trace_level"`
	ResultsPath string `yaml:"results_path"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{TraceLevel: string(trace.TraceLevelNone)}
}

// LoadConfig reads and strictly parses a YAML configuration file.
// Unknown keys are rejected so typos surface as errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// an empty file is a valid config with every default
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks parameter ranges and names.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got %d", c.Capacity)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
