package chess

import (
	"fmt"

	"github.com/lgbarn/chess48-go/internal/errors"
)

// Constants for board dimensions and algebraic coordinates.
const (
	BoardSize = 8

	FirstCol  = 'a'
	LastCol   = FirstCol + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// Square is a (row, column) board coordinate. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq creates a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether both coordinates are on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by dr rows and dc columns. The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// IsDark reports whether the square is a dark square.
func (s Square) IsDark() bool {
	return (s.Row+s.Col)%2 == 1
}

// File returns the algebraic file letter of the square.
func (s Square) File() byte {
	return byte(FirstCol + s.Col)
}

// Rank returns the algebraic rank digit of the square.
func (s Square) Rank() byte {
	return byte(FirstRank + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square ("e2"), or "??" when off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic square name such as "e2" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file < FirstCol || file > LastCol || rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{
		Row: BoardSize - 1 - int(rank-FirstRank),
		Col: int(file - FirstCol),
	}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixtures and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// Move is a proposed or recorded move. Promotion is NoPiece when none was requested.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// String renders the move as an algebraic move line: "e2 e4" or "e7 e8 Q".
func (m Move) String() string {
	s := m.From.String() + " " + m.To.String()
	if m.Promotion != NoPiece {
		s += " " + string(m.Promotion.Letter())
	}
	return s
}
