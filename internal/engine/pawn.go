package engine

import "github.com/lgbarn/chess48-go/internal/chess"

// resolvePawn checks forward steps, diagonal captures and en passant.
func resolvePawn(board *chess.Board, piece *chess.Piece, from, to chess.Square) (Resolution, bool) {
	dir := piece.Colour.Forward()
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	if colDiff == 0 {
		one := from.Offset(dir, 0)
		if !board.IsEmpty(one) {
			return Resolution{}, false
		}
		if rowDiff == dir {
			return Resolution{Kind: NoCapture}, true
		}
		if rowDiff == 2*dir && !piece.Moved && board.IsEmpty(to) {
			return Resolution{Kind: NoCapture}, true
		}
		return Resolution{}, false
	}

	if abs(colDiff) != 1 || rowDiff != dir {
		return Resolution{}, false
	}

	if target := board.Get(to); target != nil {
		if target.Colour == piece.Colour {
			return Resolution{}, false
		}
		return Resolution{Kind: Capture, Square: to}, true
	}

	// En passant: the enemy pawn stands beside us, not on the destination.
	lateral := from.Offset(0, colDiff)
	if victim := board.Get(lateral); victim != nil && victim.Colour != piece.Colour && board.EnPassantEligible(lateral) {
		return Resolution{Kind: Capture, Square: lateral}, true
	}
	return Resolution{}, false
}

// pawnTargets lists the pseudo-legal destinations of a pawn.
func pawnTargets(board *chess.Board, piece *chess.Piece, from chess.Square) []chess.Square {
	var targets []chess.Square
	dir := piece.Colour.Forward()

	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		targets = append(targets, one)
		two := from.Offset(2*dir, 0)
		if !piece.Moved && board.IsEmpty(two) {
			targets = append(targets, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		if _, ok := resolvePawn(board, piece, from, to); ok {
			targets = append(targets, to)
		}
	}
	return targets
}

// isDoubleStep reports whether a pawn move from..to is a two-square advance.
func isDoubleStep(piece *chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && from.Col == to.Col && abs(to.Row-from.Row) == 2
}
