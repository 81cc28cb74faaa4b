package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenLetter returns the FEN letter for a piece: upper case for White.
func fenLetter(p *chess.Piece) byte {
	letter := byte(unicode.ToUpper(rune(p.Kind.Letter())))
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// kindFromFENChar converts a FEN character to a piece kind.
func kindFromFENChar(c rune) chess.PieceKind {
	switch unicode.ToLower(c) {
	case 'k':
		return chess.King
	case 'q':
		return chess.Queen
	case 'r':
		return chess.Rook
	case 'n':
		return chess.Knight
	case 'b':
		return chess.Bishop
	case 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// NewBoardFromFEN creates a board from a FEN string. Castling rights are
// mapped onto the Moved flags of kings and rooks, the en passant target onto
// the pawn that just double-stepped, and pawns away from their starting rank
// are marked as moved. The move clocks are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind := kindFromFENChar(c)
			if kind == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.Sq(row, col)
			if !sq.Valid() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			piece := chess.NewPiece(colour, kind)
			// Kings and rooks start moved; castling rights clear the flag below.
			switch kind {
			case chess.King, chess.Rook:
				piece.Moved = true
			case chess.Pawn:
				piece.Moved = row != colour.HomeRow()+colour.Forward()
			}
			board.Set(sq, piece)
			col++
		}
	}
	if row != chess.BoardSize-1 {
		return fmt.Errorf("expected 8 ranks, got %d: %w", row+1, errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var rookCol int
		switch c {
		case 'K':
			colour, rookCol = chess.White, chess.BoardSize-1
		case 'Q':
			colour, rookCol = chess.White, 0
		case 'k':
			colour, rookCol = chess.Black, chess.BoardSize-1
		case 'q':
			colour, rookCol = chess.Black, 0
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		kingSq, ok := board.FindKing(colour)
		rook := board.Get(chess.Sq(colour.HomeRow(), rookCol))
		if !ok || kingSq.Row != colour.HomeRow() || rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
			return fmt.Errorf("castling right %c without king and rook: %w", c, errors.ErrInvalidFEN)
		}
		board.Get(kingSq).Moved = false
		rook.Moved = false
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant target %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	// The target is the square passed over; the pawn stands one step beyond it.
	mover := board.ToMove.Opposite()
	pawnSq := target.Offset(mover.Forward(), 0)
	pawn := board.Get(pawnSq)
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		return fmt.Errorf("en passant target %s has no pawn: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.SetEnPassant(pawnSq)
	return nil
}

// ToFEN converts a board to a FEN string. Castling rights are derived from
// the Moved flags of kings and corner rooks; the clocks are always "0 1".
func ToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// Placement returns only the piece placement field of the board's FEN.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := []struct {
		letter  byte
		colour  chess.Colour
		rookCol int
	}{
		{'K', chess.White, chess.BoardSize - 1},
		{'Q', chess.White, 0},
		{'k', chess.Black, chess.BoardSize - 1},
		{'q', chess.Black, 0},
	}

	hasCastling := false
	for _, r := range rights {
		row := r.colour.HomeRow()
		king := board.Get(chess.Sq(row, 4))
		rook := board.Get(chess.Sq(row, r.rookCol))
		if king == nil || king.Kind != chess.King || king.Colour != r.colour || king.Moved {
			continue
		}
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != r.colour || rook.Moved {
			continue
		}
		sb.WriteByte(r.letter)
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if !board.EnPassant {
		sb.WriteByte('-')
		return
	}
	pawn := board.Get(board.EPSquare)
	if pawn == nil {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(board.EPSquare.Offset(-pawn.Colour.Forward(), 0).String())
}
