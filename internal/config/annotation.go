package config

// AnnotationConfig holds settings for lines added after a game's moves.
type AnnotationConfig struct {
	AddFEN      bool // Add the final position as a "FEN ..." line
	AddPlyCount bool // Add a "Plies n" line
	AddSeed     bool // Add the "Seed n" line that reproduces the game
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
