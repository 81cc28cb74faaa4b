package output

import (
	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/config"
	"github.com/lgbarn/chess48-go/internal/matching"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

// Counts reports what OutputGames did with a batch.
type Counts struct {
	Written    int
	Filtered   int
	Suppressed int
}

// Selected reports whether game passes the configured filters and, when
// matcher is not nil, the matcher.
func Selected(game *selfplay.Game, cfg *config.Config, matcher matching.GameMatcher) bool {
	if !cfg.Filter.Matches(game.Plies(), game.Result == chess.Checkmate, game.Result == chess.Stalemate) {
		return false
	}
	return matcher == nil || matcher.Match(game)
}

// OutputGames writes games to cfg.OutputFile in cfg.Output.Format.
// Games failing the filter or matcher are skipped. Duplicates go to
// cfg.Duplicate.DuplicateFile when it is set and are left out of the main
// output when cfg.Duplicate.Suppress is set.
func OutputGames(games []*selfplay.Game, cfg *config.Config, matcher matching.GameMatcher) (Counts, error) {
	var counts Counts
	out := NewWriter(cfg.OutputFile, cfg)

	var dups GameWriter
	if cfg.Duplicate.DuplicateFile != nil {
		dups = NewWriter(cfg.Duplicate.DuplicateFile, cfg)
	}

	for _, game := range games {
		if !Selected(game, cfg, matcher) {
			counts.Filtered++
			continue
		}
		if game.Duplicate {
			if dups != nil {
				if err := dups.WriteGame(game); err != nil {
					return counts, err
				}
			}
			if cfg.Duplicate.Suppress {
				counts.Suppressed++
				continue
			}
		}
		if err := out.WriteGame(game); err != nil {
			return counts, err
		}
		counts.Written++
	}

	if dups != nil {
		if err := dups.Close(); err != nil {
			return counts, err
		}
	}
	return counts, out.Close()
}
