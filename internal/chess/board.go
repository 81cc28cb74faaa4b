package chess

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, Squares[row][col]. A nil entry is an empty square.
	Squares [BoardSize][BoardSize]*Piece

	// Who has the next move.
	ToMove Colour

	// Is an en passant capture possible? If so then EPSquare holds the
	// pawn that just made its double step. At most one pawn is eligible
	// at any time and it always belongs to the side that is not to move.
	EnPassant bool
	EPSquare  Square
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// Get returns the piece on the given square, or nil if the square is empty
// or off the board.
func (b *Board) Get(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece (or nil) on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, p *Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// IsEmpty reports whether the square is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.Squares[sq.Row][sq.Col] == nil
}

// EnPassantEligible reports whether the piece on sq is a pawn that may be
// captured en passant on this move.
func (b *Board) EnPassantEligible(sq Square) bool {
	if !b.EnPassant || b.EPSquare != sq {
		return false
	}
	p := b.Get(sq)
	return p != nil && p.Kind == Pawn
}

// ClearEnPassant drops any pending en passant eligibility.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPSquare = Square{}
}

// SetEnPassant marks the pawn on sq as capturable en passant for one turn.
func (b *Board) SetEnPassant(sq Square) {
	b.EnPassant = true
	b.EPSquare = sq
}

// Copy creates a deep copy of the board. Every piece on the copy is a fresh
// instance, so the copy can be mutated without touching the original.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			newBoard.Squares[row][col] = b.Squares[row][col].Copy()
		}
	}
	return newBoard
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p != nil && p.Kind == King && p.Colour == colour {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Occupied returns the squares holding pieces of the given colour in row-major order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p != nil && p.Colour == colour {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Equal reports whether two boards hold identical pieces, movement state,
// turn and en passant state.
func (b *Board) Equal(other *Board) bool {
	if b.ToMove != other.ToMove || b.EnPassant != other.EnPassant {
		return false
	}
	if b.EnPassant && b.EPSquare != other.EPSquare {
		return false
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p, q := b.Squares[row][col], other.Squares[row][col]
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && *p != *q {
				return false
			}
		}
	}
	return true
}
