// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Prefix returns the layout prefix for the colour ('w' or 'b').
func (c Colour) Prefix() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Forward returns the row delta of a pawn advance: White moves toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back rank row for the colour.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PromotionRow returns the row on which a pawn of this colour promotes.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // No piece; also "no promotion requested"
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the layout letter of a piece kind. Pawns use a lower case 'p'.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'p', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotion reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotion() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a layout letter to a piece kind.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'p':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return NoPiece, false
	}
}

// PromotionFromLetter converts a promotion letter ("Q", "R", "B", "N") to a kind.
func PromotionFromLetter(s string) (PieceKind, bool) {
	if len(s) != 1 {
		return NoPiece, false
	}
	kind, ok := KindFromLetter(s[0])
	if !ok || !kind.IsPromotion() {
		return NoPiece, false
	}
	return kind, true
}

// Piece is a piece standing on a board. Each piece belongs to exactly one Board.
type Piece struct {
	Kind   PieceKind
	Colour Colour

	// Moved is set once the piece has moved. Used for castling rights
	// and the pawn double step.
	Moved bool
}

// NewPiece creates a piece in its default (unmoved) state.
func NewPiece(colour Colour, kind PieceKind) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) *Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) *Piece {
	return NewPiece(Black, kind)
}

// Copy returns a fresh piece with the same kind, colour and movement state.
func (p *Piece) Copy() *Piece {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Code returns the two character layout code, e.g. "wK" or "bp".
func (p *Piece) Code() string {
	return string([]byte{p.Colour.Prefix(), p.Kind.Letter()})
}

// String implements fmt.Stringer.
func (p *Piece) String() string {
	if p == nil {
		return "--"
	}
	return p.Code()
}

// ParsePieceCode parses a two character layout code.
func ParsePieceCode(code string) (*Piece, bool) {
	if len(code) != 2 {
		return nil, false
	}
	var colour Colour
	switch code[0] {
	case 'w':
		colour = White
	case 'b':
		colour = Black
	default:
		return nil, false
	}
	kind, ok := KindFromLetter(code[1])
	if !ok {
		return nil, false
	}
	return NewPiece(colour, kind), true
}
