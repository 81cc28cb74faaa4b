// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess48-go/internal/config"
)

var (
	// Modes
	playMode    = flag.Bool("play", false, "Play a game at the console, reading moves from stdin")
	replayFile  = flag.String("replay", "", "Replay and validate a move list file")
	archiveFile = flag.String("readarchive", "", "Replay and validate every game in a parquet archive")
	selfPlay    = flag.Int("selfplay", 0, "Play N games between two random movers")

	// Position and self-play options
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard one")
	seed     = flag.Int64("seed", config.DefaultSeed, "Seed of the first self-play game (game i uses seed+i)")
	plyLimit = flag.Int("plylimit", config.DefaultMaxPlies, "Stop a self-play game after N plies (0 = no limit)")
	workers  = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")

	// Output options
	outputFile      = flag.String("o", "", "Output file (default: stdout)")
	appendOutput    = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat    = flag.String("W", "moves", "Output format: moves, json, fen")
	showBoard       = flag.Bool("board", false, "Draw the final board after each game (moves format)")
	parquetFile     = flag.String("parquet", "", "Also archive self-play games to this parquet file")
	parquetParallel = flag.Int64("parquet-parallel", 4, "Number of parquet writer goroutines")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games ending in an already reached position")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same ply count")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Filtering options
	minPly          = flag.Int("minply", 0, "Minimum ply count")
	maxPly          = flag.Int("maxply", 0, "Maximum ply count (0 = no limit)")
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")

	// Position and material matching
	fenFilter          = flag.String("Tf", "", "Only output games reaching this FEN position")
	patternFilter      = flag.String("Tp", "", "Only output games reaching a placement pattern (wildcards ? ! * A a _)")
	invertPattern      = flag.Bool("invert", false, "Also match the colour-reversed placement pattern")
	materialMatch      = flag.String("z", "", "Material balance to reach (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to reach")

	// Annotations
	addFEN      = flag.Bool("addfen", false, "Add the final position as a FEN line")
	addPlyCount = flag.Bool("plycount", false, "Add a ply count line")
	addSeed     = flag.Bool("addseed", false, "Add the seed that reproduces the game")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Report each game and periodic progress")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applySelfPlayFlags(cfg)
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	applyPlyBoundsFlags(cfg)
	applyAnnotationFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applySelfPlayFlags configures the self-play batch.
func applySelfPlayFlags(cfg *config.Config) {
	cfg.Games = *selfPlay
	cfg.Seed = *seed
	cfg.MaxPlies = *plyLimit
	cfg.StartFEN = *startFEN
	if *workers > 0 {
		cfg.Workers = *workers
	}
}

// applyOutputFormatFlags configures the output format.
func applyOutputFormatFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ParquetPath = *parquetFile
	cfg.Output.ParquetParallel = *parquetParallel
	return nil
}

// applyPlyBoundsFlags configures ply bounds.
func applyPlyBoundsFlags(cfg *config.Config) {
	if *minPly <= 0 && *maxPly <= 0 {
		return
	}

	cfg.Filter.CheckPlyBounds = true
	if *minPly > 0 {
		cfg.Filter.LowerPlyBound = uint(*minPly)
	}
	cfg.Filter.UpperPlyBound = ^uint(0)
	if *maxPly > 0 {
		cfg.Filter.UpperPlyBound = uint(*maxPly)
	}
}

// applyAnnotationFlags configures the lines added after each game.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddFEN = *addFEN
	cfg.Annotation.AddPlyCount = *addPlyCount
	cfg.Annotation.AddSeed = *addSeed
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
