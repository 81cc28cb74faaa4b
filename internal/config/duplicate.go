package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress drops games whose final position was already reached
	Suppress bool

	// ExactMatch also requires the ply counts of the games to agree
	ExactMatch bool

	// MaxCapacity bounds the number of stored positions (0 = unlimited)
	MaxCapacity int

	// DuplicateFile receives suppressed games when set
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
