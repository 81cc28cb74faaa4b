package config

import (
	"fmt"

	"github.com/lgbarn/chess48-go/internal/errors"
)

// OutputConfig holds settings related to writing games.
type OutputConfig struct {
	// Format specifies how games are written to OutputFile
	Format OutputFormat

	// ShowBoard renders the final board after each game in MoveList format
	ShowBoard bool

	// ParquetPath, when set, also archives the games to a parquet file
	ParquetPath string

	// ParquetParallel is the number of parquet writer goroutines
	ParquetParallel int64
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          MoveList,
		ParquetParallel: 4,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.Format < MoveList || o.Format > FEN {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.ParquetPath != "" && o.ParquetParallel < 1 {
		return fmt.Errorf("parquet parallelism (%d) must be at least 1: %w", o.ParquetParallel, errors.ErrInvalidConfig)
	}
	return nil
}
