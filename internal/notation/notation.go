// Package notation reads and writes games as newline-delimited move lists.
//
// A move line is "<from> <to>" with an optional promotion letter, for
// example "e2 e4" or "e7 e8 N". A game is its move lines in order, each
// terminated by a newline. The external layer may append annotation lines
// after the moves (who resigned, who won); they are carried along but never
// interpreted as moves.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/errors"
)

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= chess.FirstCol && c <= chess.LastCol
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.FirstRank && c <= chess.LastRank
}

// looksLikeSquare reports whether s has the shape of a square name, a
// lower case letter followed by a digit, whether or not it is on the board.
func looksLikeSquare(s string) bool {
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'z' && s[1] >= '0' && s[1] <= '9'
}

// IsMoveLine reports whether line is meant as a move: its first field has
// the shape of a square name. A move line may still fail to parse.
func IsMoveLine(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && looksLikeSquare(fields[0])
}

// ParseMove decodes a single move line.
func ParseMove(line string) (chess.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return chess.Move{}, fmt.Errorf("move %q: want 2 or 3 fields: %w", line, errors.ErrInvalidMoveText)
	}

	from, err := parseSquare(fields[0])
	if err != nil {
		return chess.Move{}, err
	}
	to, err := parseSquare(fields[1])
	if err != nil {
		return chess.Move{}, err
	}

	m := chess.Move{From: from, To: to}
	if len(fields) == 3 {
		kind, ok := chess.PromotionFromLetter(fields[2])
		if !ok {
			return chess.Move{}, fmt.Errorf("move %q: bad promotion %q: %w", line, fields[2], errors.ErrInvalidMoveText)
		}
		m.Promotion = kind
	}
	return m, nil
}

func parseSquare(name string) (chess.Square, error) {
	if len(name) != 2 || !isCol(name[0]) || !isRank(name[1]) {
		return chess.Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidMoveText)
	}
	return chess.ParseSquare(name)
}

// FormatMove encodes a move as a move line without the newline.
func FormatMove(m chess.Move) string {
	return m.String()
}

// Export writes the move list, one newline-terminated line per move.
func Export(moves []chess.Move) string {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString(FormatMove(m))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ExportWithAnnotations writes the move list followed by annotation lines.
// Blank annotations are dropped.
func ExportWithAnnotations(moves []chess.Move, annotations ...string) string {
	var sb strings.Builder
	sb.WriteString(Export(moves))
	for _, a := range annotations {
		if a = strings.TrimSpace(a); a != "" {
			sb.WriteString(a)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
