package engine

import "github.com/lgbarn/chess48-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return isSquareAttacked(board, kingSq, colour.Opposite())
}

// isSquareAttacked returns true if a piece of byColour could capture the
// piece standing on sq. Only geometric legality is tested: the attacker's
// own king safety is irrelevant to whether it gives check.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		res, ok := ResolveMove(board, from, sq)
		if ok && res.Kind == Capture && res.Square == sq {
			return true
		}
	}
	return false
}
