// Package config holds the tunable thresholds of the schedule extraction
// pipeline and loads them from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every threshold used while rebuilding a schedule table.
// Distances are in PDF points.
type Config struct {
	// RowTolerance is the maximum vertical distance between the midpoints
	// of two words on the same visual line (default: 4.0)
	RowTolerance float64 `yaml:"row_tolerance"`

	// HeaderMargin pads the outermost header-derived column boundaries
	// (default: 10)
	HeaderMargin float64 `yaml:"header_margin"`

	// FallbackPadding pads the token extent before the equal-width split
	// (default: 5)
	FallbackPadding float64 `yaml:"fallback_padding"`

	// RectSlack expands the table rectangle before filtering words
	// (default: 5)
	RectSlack float64 `yaml:"rect_slack"`

	// MinRectWidth and MinRectHeight are the smallest rectangle accepted as
	// the table outline (defaults: 300 x 150)
	MinRectWidth  float64 `yaml:"min_rect_width"`
	MinRectHeight float64 `yaml:"min_rect_height"`

	// MinHeaders is the number of distinct header labels needed before
	// header positions are trusted (default: 5)
	MinHeaders int `yaml:"min_headers"`

	// DateSlack lets date recovery accept words slightly above the header
	// row (default: 2)
	DateSlack float64 `yaml:"date_slack"`

	// Workers bounds the number of pages parsed concurrently (default: 1)
	Workers int `yaml:"workers"`
}

// Default returns the thresholds tuned for the exam schedules this tool
// was built for.
func Default() Config {
	return Config{
		RowTolerance:    4.0,
		HeaderMargin:    10,
		FallbackPadding: 5,
		RectSlack:       5,
		MinRectWidth:    300,
		MinRectHeight:   150,
		MinHeaders:      5,
		DateSlack:       2,
		Workers:         1,
	}
}

// Load reads a YAML file and overlays it on Default. Keys missing from the
// file keep their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every threshold is usable.
func (c Config) Validate() error {
	switch {
	case c.RowTolerance <= 0:
		return fmt.Errorf("%w: row_tolerance must be positive, got %v", ErrInvalid, c.RowTolerance)
	case c.HeaderMargin < 0:
		return fmt.Errorf("%w: header_margin must not be negative, got %v", ErrInvalid, c.HeaderMargin)
	case c.FallbackPadding < 0:
		return fmt.Errorf("%w: fallback_padding must not be negative, got %v", ErrInvalid, c.FallbackPadding)
	case c.RectSlack < 0:
		return fmt.Errorf("%w: rect_slack must not be negative, got %v", ErrInvalid, c.RectSlack)
	case c.MinRectWidth < 0 || c.MinRectHeight < 0:
		return fmt.Errorf("%w: minimum rectangle size must not be negative", ErrInvalid)
	case c.MinHeaders < 1 || c.MinHeaders > 6:
		return fmt.Errorf("%w: min_headers must be between 1 and 6, got %d", ErrInvalid, c.MinHeaders)
	case c.DateSlack < 0:
		return fmt.Errorf("%w: date_slack must not be negative, got %v", ErrInvalid, c.DateSlack)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	return nil
}

// Marshal renders the configuration as YAML, e.g. to seed a config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
