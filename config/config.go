// Package config loads tourctl settings from YAML.
//
// Values start from Default, are overlaid by a file via Load, and may be
// overridden again by command line flags before Validate is called.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"sigs.k8s.io/yaml"

	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

// ErrInvalidConfig is returned, wrapped with the offending field, for any
// rejected setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by the CLI.
const (
	OutputText       = "text"
	OutputYAML       = "yaml"
	OutputJSON       = "json"
	OutputJSONPretty = "json-pretty"
)

// Outputs lists the accepted Output values.
var Outputs = []string{OutputJSON, OutputJSONPretty, OutputText, OutputYAML}

// DefaultMaxLocations keeps a default depth-first run to 11! tours.
const DefaultMaxLocations = 12

// Config holds everything a search run needs besides the table contents.
type Config struct {
	// Table is the path of the CSV distance table. A relative path in a
	// file is resolved against the file's directory.
	Table string `json:"table,omitempty"`

	// Start is the start location.
	Start string `json:"start,omitempty"`

	// Locations is the selection. Empty means every row of the table.
	Locations []string `json:"locations,omitempty"`

	Algorithm    tsp.Algorithm `json:"algorithm"`
	MinLocations int           `json:"minLocations"`
	MaxLocations int           `json:"maxLocations"`
	Output       string        `json:"output"`

	// MetricsFile, if set, receives a Prometheus textfile after each run.
	MetricsFile string `json:"metricsFile,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Algorithm:    tsp.DFS,
		MinLocations: tsp.DefaultMinLocations,
		MaxLocations: DefaultMaxLocations,
		Output:       OutputYAML,
	}
}

// Load reads path over Default and validates the result. Unknown fields
// are rejected.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.UnmarshalStrict(b, &c); err != nil {
		return c, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if c.Table != "" && !filepath.IsAbs(c.Table) {
		c.Table = filepath.Join(filepath.Dir(path), c.Table)
	}
	if err = c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.MinLocations < 0:
		return fmt.Errorf("%w: minLocations: %d is negative", ErrInvalidConfig, c.MinLocations)
	case c.MaxLocations < 0:
		return fmt.Errorf("%w: maxLocations: %d is negative", ErrInvalidConfig, c.MaxLocations)
	case c.MaxLocations > 0 && c.MinLocations > c.MaxLocations:
		return fmt.Errorf("%w: minLocations: %d exceeds maxLocations %d",
			ErrInvalidConfig, c.MinLocations, c.MaxLocations)
	case !slices.Contains(Outputs, c.Output):
		return fmt.Errorf("%w: output: %q, expected one of %v", ErrInvalidConfig, c.Output, Outputs)
	}
	if _, err := c.Algorithm.MarshalText(); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SearchOptions returns the tsp options implied by c.
func (c Config) SearchOptions() []tsp.Option {
	return []tsp.Option{
		tsp.WithMinLocations(c.MinLocations),
		tsp.WithMaxLocations(c.MaxLocations),
	}
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }
