// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chess48-go/internal/chess"

// CaptureKind classifies what a geometrically legal move does besides moving the piece.
type CaptureKind int

const (
	NoCapture CaptureKind = iota // Quiet move
	Capture                      // Removes the piece on Resolution.Square
	Castle                       // Also moves the rook on Resolution.Square
)

// Resolution describes how a geometrically legal move resolves.
//
// For a Capture, Square is the square of the captured piece. It equals the
// destination except for en passant, where it is the square of the pawn
// being taken. For a Castle, Square is the rook's square.
type Resolution struct {
	Kind   CaptureKind
	Square chess.Square
}

// ResolveMove checks whether the piece on from can move to to, ignoring
// whether the move leaves its own king in check. It never mutates the board.
func ResolveMove(board *chess.Board, from, to chess.Square) (Resolution, bool) {
	if !from.Valid() || !to.Valid() || from == to {
		return Resolution{}, false
	}
	piece := board.Get(from)
	if piece == nil {
		return Resolution{}, false
	}

	switch piece.Kind {
	case chess.Pawn:
		return resolvePawn(board, piece, from, to)
	case chess.Knight:
		return resolveKnight(board, piece, from, to)
	case chess.Bishop:
		return resolveSliding(board, piece, from, to, true, false)
	case chess.Rook:
		return resolveSliding(board, piece, from, to, false, true)
	case chess.Queen:
		return resolveSliding(board, piece, from, to, true, true)
	case chess.King:
		return resolveKing(board, piece, from, to)
	}

	panic("engine: unrecognised piece kind " + piece.Kind.String())
}

// landOn resolves a move onto to for a piece of the given colour: an empty
// square is a quiet move, an enemy piece is a capture, a friendly piece
// blocks the move.
func landOn(board *chess.Board, colour chess.Colour, to chess.Square) (Resolution, bool) {
	target := board.Get(to)
	if target == nil {
		return Resolution{Kind: NoCapture}, true
	}
	if target.Colour == colour {
		return Resolution{}, false
	}
	return Resolution{Kind: Capture, Square: to}, true
}

var knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

var kingOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// resolveKnight checks the eight fixed knight jumps.
func resolveKnight(board *chess.Board, piece *chess.Piece, from, to chess.Square) (Resolution, bool) {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	if !((rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)) {
		return Resolution{}, false
	}
	return landOn(board, piece.Colour, to)
}

// resolveKing checks single steps and castling.
func resolveKing(board *chess.Board, piece *chess.Piece, from, to chess.Square) (Resolution, bool) {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	if rowDiff == 0 && colDiff == 2 {
		return resolveCastle(board, piece, from, to)
	}
	if rowDiff > 1 || colDiff > 1 {
		return Resolution{}, false
	}
	return landOn(board, piece.Colour, to)
}

// pieceTargets lists the on-board offset squares not held by a friendly piece.
func pieceTargets(board *chess.Board, colour chess.Colour, from chess.Square, offsets [8][2]int) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if target := board.Get(to); target != nil && target.Colour == colour {
			continue
		}
		targets = append(targets, to)
	}
	return targets
}
