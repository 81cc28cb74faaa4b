package engine

import (
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/errors"
)

// StartingLayout is the standard starting position in layout form.
const StartingLayout = "bR bN bB bQ bK bB bN bR\n" +
	"bp bp bp bp bp bp bp bp\n" +
	"\n\n\n\n" +
	"wp wp wp wp wp wp wp wp\n" +
	"wR wN wB wQ wK wB wN wR"

// EmptySquareToken marks an empty square in a layout.
const EmptySquareToken = "##"

// ParseLayout builds a board from the layout grammar: one line per row from
// rank 8 down, squares separated by single spaces, each square a piece code
// ("wK", "bp", ...), the "##" placeholder, or nothing at all. Rows may stop
// early; missing squares are empty. White moves first and every piece is unmoved.
func ParseLayout(layout string) (*chess.Board, error) {
	board := chess.NewBoard()
	if layout == "" {
		return board, nil
	}

	lines := strings.Split(strings.ReplaceAll(layout, "\r\n", "\n"), "\n")
	for row, line := range lines {
		if row >= chess.BoardSize {
			if strings.TrimSpace(line) != "" {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidLayout,
					Line:     row + 1,
					Expected: "at most 8 rows",
					Got:      line,
				}
			}
			continue
		}

		for col, token := range strings.Split(line, " ") {
			if token == "" || token == EmptySquareToken {
				continue
			}
			if col >= chess.BoardSize {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidLayout,
					Line:     row + 1,
					Column:   col + 1,
					Expected: "at most 8 squares",
					Got:      token,
				}
			}
			piece, ok := chess.ParsePieceCode(token)
			if !ok {
				return nil, &errors.ParseError{
					Err:      errors.ErrInvalidLayout,
					Line:     row + 1,
					Column:   col + 1,
					Expected: "piece code",
					Got:      token,
				}
			}
			board.Set(chess.Sq(row, col), piece)
		}
	}
	return board, nil
}

// MustParseLayout is like ParseLayout but panics on error.
// It is intended for fixtures and tests.
func MustParseLayout(layout string) *chess.Board {
	board, err := ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return board
}

// Layout renders the pieces of a board in the layout grammar, using "##"
// for every empty square.
func Layout(board *chess.Board) string {
	rows := make([]string, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		tokens := make([]string, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p != nil {
				tokens[col] = p.Code()
			} else {
				tokens[col] = EmptySquareToken
			}
		}
		rows[row] = strings.Join(tokens, " ")
	}
	return strings.Join(rows, "\n")
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	return MustParseLayout(StartingLayout)
}
