package renderer

import (
	"fmt"
	"math"
	"time"
)

// Config contains rendering configuration
type Config struct {
	Width           int           // Image width in pixels
	AspectRatio     float64       // Width / height; the height is derived from it
	SamplesPerPixel int           // Number of rays per pixel
	MaxDepth        int           // Maximum ray bounce depth
	NumWorkers      int           // Number of parallel workers (0 = use CPU count)
	Seed            int64         // Base seed for row samplers (0 = seed from the clock)
	MaxRetries      int           // How many times a failed row is resubmitted
	Timeout         time.Duration // Upper bound on the whole render (0 = none)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           1000,
		AspectRatio:     16.0 / 10.0,
		SamplesPerPixel: 500,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            0,
		MaxRetries:      2,
	}
}

// Height returns the image height derived from the width and aspect ratio
func (c Config) Height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// Validate checks that the configuration describes a renderable image
func (c Config) Validate() error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidConfig, c.Width)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio must be positive, got %v", ErrInvalidConfig, c.AspectRatio)
	case c.Height() < 1:
		return fmt.Errorf("%w: width %d and aspect ratio %v give an empty image", ErrInvalidConfig, c.Width, c.AspectRatio)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	case c.MaxRetries < 0:
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalidConfig, c.MaxRetries)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalidConfig, c.Timeout)
	}
	return nil
}
