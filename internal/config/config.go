// Package config provides configuration for chess48.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess48-go/internal/errors"
)

// OutputFormat selects how self-play games are written.
type OutputFormat int

const (
	MoveList OutputFormat = iota // Move lines followed by annotation lines
	JSON                         // One JSON object per game
	FEN                          // Final position of each game
)

var formatNames = []string{"moves", "json", "fen"}

// String returns the flag name of a format.
func (f OutputFormat) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseOutputFormat maps a flag name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for i, n := range formatNames {
		if n == name {
			return OutputFormat(i), nil
		}
	}
	return MoveList, fmt.Errorf("output format %q: %w", name, errors.ErrInvalidConfig)
}

// Default limits.
const (
	DefaultMaxPlies = 400
	DefaultSeed     = 1
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Self-play batch
	Games    int
	Workers  int
	Seed     int64 // Game i uses Seed+i
	MaxPlies int   // 0 means no limit

	// StartFEN replaces the standard starting position when set.
	StartFEN string

	Output     *OutputConfig
	Duplicate  *DuplicateConfig
	Filter     *FilterConfig
	Annotation *AnnotationConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Games:      1,
		Workers:    runtime.GOMAXPROCS(0),
		Seed:       DefaultSeed,
		MaxPlies:   DefaultMaxPlies,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		Annotation: NewAnnotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream games are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Games < 0 {
		return fmt.Errorf("game count (%d) is negative: %w", c.Games, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.MaxPlies < 0 {
		return fmt.Errorf("ply limit (%d) is negative: %w", c.MaxPlies, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}
