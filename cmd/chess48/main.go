// chess48 plays, replays and generates chess games under the full rules.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chess48-go/internal/config"
	"github.com/lgbarn/chess48-go/internal/matching"
	"github.com/lgbarn/chess48-go/internal/output"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess48 version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *replayFile != "":
		if err := runReplay(*replayFile, cfg); err != nil {
			fmt.Fprintf(cfg.LogFile, "%v\n", err)
			os.Exit(1)
		}

	case *archiveFile != "":
		valid, invalid, err := runArchive(*archiveFile, cfg)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error reading archive %s: %v\n", *archiveFile, err)
			os.Exit(1)
		}
		if cfg.Verbosity > 0 {
			fmt.Fprintf(os.Stderr, "%d game(s) valid, %d invalid.\n", valid, invalid)
		}
		if invalid > 0 {
			os.Exit(1)
		}

	case *selfPlay > 0:
		matcher, err := setupGameMatcher()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		stats, counts, err := runSelfPlay(ctx, cfg, matcher)
		if cfg.Verbosity > 0 {
			reportStatistics(stats, counts)
		}
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		s, err := runConsole(os.Stdin, os.Stdout, cfg)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error reading input: %v\n", err)
			os.Exit(1)
		}
		if *outputFile != "" {
			fmt.Fprint(cfg.OutputFile, s.Record())
		}
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupGameMatcher combines the position and material criteria given on
// the command line. It returns nil when there are none.
func setupGameMatcher() (matching.GameMatcher, error) {
	composite := matching.NewCompositeMatcher(matching.MatchAll)

	if *fenFilter != "" || *patternFilter != "" {
		pm := matching.NewPositionMatcher()
		if *fenFilter != "" {
			if err := pm.AddFEN(*fenFilter, *fenFilter); err != nil {
				return nil, err
			}
		}
		if *patternFilter != "" {
			pm.AddPattern(*patternFilter, *patternFilter, *invertPattern)
		}
		composite.Add(pm)
	}

	if *materialMatch != "" {
		composite.Add(matching.NewMaterialMatcher(*materialMatch, false))
	}
	if *materialMatchExact != "" {
		composite.Add(matching.NewMaterialMatcher(*materialMatchExact, true))
	}

	if composite.Len() == 0 {
		return nil, nil
	}
	return composite, nil
}

// reportStatistics prints the final statistics to stderr.
func reportStatistics(stats selfplay.Stats, counts output.Counts) {
	fmt.Fprintf(os.Stderr, "%d game(s) output, %d duplicate(s) out of %d.\n", counts.Written, stats.Duplicates, stats.Played)
	fmt.Fprintf(os.Stderr, "%d checkmate(s), %d stalemate(s).\n", stats.Checkmates, stats.Stalemates)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess48 [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess at the console, replays move lists and generates random games.\n")
	fmt.Fprintf(os.Stderr, "With no mode flag a console game is read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nConsole commands:\n")
	fmt.Fprintf(os.Stderr, "  e2 e4        move a piece\n")
	fmt.Fprintf(os.Stderr, "  e7 e8 N      move a pawn and promote it (Q, R, B, N)\n")
	fmt.Fprintf(os.Stderr, "  e2 e4 draw?  move and offer a draw\n")
	fmt.Fprintf(os.Stderr, "  draw         accept a draw offer\n")
	fmt.Fprintf(os.Stderr, "  undo         take back the last move (once per turn)\n")
	fmt.Fprintf(os.Stderr, "  resign       resign the game\n")
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  moves  Move lines followed by annotation lines (default)\n")
	fmt.Fprintf(os.Stderr, "  json   One JSON object per game\n")
	fmt.Fprintf(os.Stderr, "  fen    Final position of each game\n")
}
