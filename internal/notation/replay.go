package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/errors"
)

// Record is a game rebuilt from a move list.
type Record struct {
	Game *engine.Game

	// Result of the last move played; Success for an empty list.
	Result chess.Result

	// Annotations holds the trailing non-move lines, trimmed, in order.
	Annotations []string
}

// Finished reports whether the replayed game ended on the board.
func (r *Record) Finished() bool {
	return r.Result.Terminal()
}

// Replay rebuilds a game from the standard starting position.
func Replay(text string) (*Record, error) {
	return ReplayFrom(engine.NewInitialBoard(), text)
}

// ReplayFrom rebuilds a game from board by playing every move line through
// the full rules. Blank lines are ignored. The first line that is not a
// move starts the annotations; a move after it is an error. Errors are
// *errors.GameError values carrying the ply and line of the bad move.
func ReplayFrom(board *chess.Board, text string) (*Record, error) {
	rec := &Record{Game: engine.NewGameFromBoard(board), Result: chess.Success}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if !IsMoveLine(line) {
			rec.Annotations = append(rec.Annotations, line)
			continue
		}

		ply := rec.Game.Ply() + 1
		gameErr := func(err error) error {
			return &errors.GameError{Err: err, PlyNum: ply, MoveText: line, Line: i + 1}
		}

		if len(rec.Annotations) > 0 {
			return nil, gameErr(fmt.Errorf("move after annotation %q: %w", rec.Annotations[0], errors.ErrInvalidMoveText))
		}
		if rec.Result.Terminal() {
			return nil, gameErr(errors.Wrap(errors.ErrGameOver, rec.Result.String()))
		}

		m, err := ParseMove(line)
		if err != nil {
			return nil, gameErr(err)
		}
		res := rec.Game.Play(m)
		if !res.Applied() {
			return nil, gameErr(errors.Wrap(errors.ErrIllegalMove, res.String()))
		}
		rec.Result = res
	}
	return rec, nil
}
