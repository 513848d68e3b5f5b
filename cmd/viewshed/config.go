package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/viewshed/render"
)

// Defaults used when neither a flag nor the config file sets a value.
const (
	defaultEpsilon      = 1.0
	defaultBlockSize    = 4
	defaultNeighborhood = 3
	defaultMaxSide      = 1000
	defaultColorizer    = "greyscale"
	maxConfigSize       = 1 << 20
)

// Config holds tool defaults loaded from a JSON file. Every field is
// optional; nil means "use the built-in default".
type Config struct {
	Epsilon      *float64 `json:"epsilon,omitempty"`
	BlockSize    *int     `json:"block_size,omitempty"`
	Neighborhood *int     `json:"neighborhood,omitempty"`
	Workers      *int     `json:"workers,omitempty"`
	MaxSide      *int     `json:"max_side,omitempty"`
	Colorizer    *string  `json:"colorizer,omitempty"`
	Exponent     *float64 `json:"exponent,omitempty"`
	AreaScaling  *bool    `json:"area_scaling,omitempty"`
}

// LoadConfig reads and validates a JSON config file. The path must end in
// .json and the file must be under 1MB.
func LoadConfig(path string) (*Config, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks every set field.
func (c *Config) Validate() error {
	if c.Epsilon != nil && !validEpsilon(*c.Epsilon) {
		return fmt.Errorf("epsilon must be finite and >= 0, got %g", *c.Epsilon)
	}
	if c.BlockSize != nil && *c.BlockSize < 1 {
		return fmt.Errorf("block_size must be >= 1, got %d", *c.BlockSize)
	}
	if c.Neighborhood != nil && *c.Neighborhood < 1 {
		return fmt.Errorf("neighborhood must be >= 1, got %d", *c.Neighborhood)
	}
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", *c.Workers)
	}
	if c.MaxSide != nil && *c.MaxSide < 1 {
		return fmt.Errorf("max_side must be >= 1, got %d", *c.MaxSide)
	}
	if c.Colorizer != nil {
		if _, ok := render.ColorizerByName(*c.Colorizer); !ok {
			return fmt.Errorf("unknown colorizer %q", *c.Colorizer)
		}
	}
	if c.Exponent != nil && !validExponent(*c.Exponent) {
		return fmt.Errorf("exponent must be finite and > 0, got %g", *c.Exponent)
	}
	return nil
}

func validEpsilon(e float64) bool { return !math.IsNaN(e) && !math.IsInf(e, 0) && e >= 0 }

func validExponent(e float64) bool { return !math.IsNaN(e) && !math.IsInf(e, 0) && e > 0 }

// GetEpsilon returns the decomposition tolerance.
func (c *Config) GetEpsilon() float64 {
	if c == nil || c.Epsilon == nil {
		return defaultEpsilon
	}
	return *c.Epsilon
}

// GetBlockSize returns the simplified-count block size.
func (c *Config) GetBlockSize() int {
	if c == nil || c.BlockSize == nil {
		return defaultBlockSize
	}
	return *c.BlockSize
}

// GetNeighborhood returns the nearest-neighbor window size.
func (c *Config) GetNeighborhood() int {
	if c == nil || c.Neighborhood == nil {
		return defaultNeighborhood
	}
	return *c.Neighborhood
}

// GetWorkers returns the pool size, or 0 to let the library decide.
func (c *Config) GetWorkers() int {
	if c == nil || c.Workers == nil {
		return 0
	}
	return *c.Workers
}

// GetMaxSide returns the downsampling limit.
func (c *Config) GetMaxSide() int {
	if c == nil || c.MaxSide == nil {
		return defaultMaxSide
	}
	return *c.MaxSide
}

// GetColorizer returns the heatmap colorizer name.
func (c *Config) GetColorizer() string {
	if c == nil || c.Colorizer == nil {
		return defaultColorizer
	}
	return *c.Colorizer
}

// GetExponent returns the heatmap exponent.
func (c *Config) GetExponent() float64 {
	if c == nil || c.Exponent == nil {
		return render.DefaultExponent
	}
	return *c.Exponent
}

// GetAreaScaling reports whether simplified counts are scaled by k².
func (c *Config) GetAreaScaling() bool {
	return c != nil && c.AreaScaling != nil && *c.AreaScaling
}
