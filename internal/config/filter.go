package config

import (
	"fmt"

	"github.com/lgbarn/chess48-go/internal/errors"
)

// FilterConfig selects which finished games are written.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool
	LowerPlyBound  uint
	UpperPlyBound  uint

	// Match conditions; when both are set either ending matches
	MatchCheckmate bool
	MatchStalemate bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values (false, 0) - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.LowerPlyBound > f.UpperPlyBound {
		return fmt.Errorf("lower ply bound (%d) > upper ply bound (%d): %w",
			f.LowerPlyBound, f.UpperPlyBound, errors.ErrInvalidConfig)
	}
	return nil
}

// Matches reports whether a game of plies half-moves that ended in
// checkmate or stalemate (or neither) passes the filter.
func (f *FilterConfig) Matches(plies int, checkmate, stalemate bool) bool {
	if f.CheckPlyBounds && (uint(plies) < f.LowerPlyBound || uint(plies) > f.UpperPlyBound) {
		return false
	}
	if f.MatchCheckmate || f.MatchStalemate {
		return (f.MatchCheckmate && checkmate) || (f.MatchStalemate && stalemate)
	}
	return true
}
