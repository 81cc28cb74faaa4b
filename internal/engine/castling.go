package engine

import "github.com/lgbarn/chess48-go/internal/chess"

// resolveCastle checks a two-square lateral king move. The king and the rook
// in the corner on that side must both be unmoved, the rook must share the
// king's colour and every square strictly between them must be empty.
// Attacks on the king's path are checked by the game, not here.
func resolveCastle(board *chess.Board, king *chess.Piece, from, to chess.Square) (Resolution, bool) {
	if king.Moved {
		return Resolution{}, false
	}

	dir := sign(to.Col - from.Col)
	rookSq := chess.Sq(from.Row, 0)
	if dir > 0 {
		rookSq = chess.Sq(from.Row, chess.BoardSize-1)
	}
	// The king must pass at least two squares before the rook.
	if abs(rookSq.Col-from.Col) <= 2 {
		return Resolution{}, false
	}

	for sq := from.Offset(0, dir); sq != rookSq; sq = sq.Offset(0, dir) {
		if board.Get(sq) != nil {
			return Resolution{}, false
		}
	}

	rook := board.Get(rookSq)
	if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.Moved {
		return Resolution{}, false
	}
	return Resolution{Kind: Castle, Square: rookSq}, true
}

// castleTargets lists the castling destinations currently available to a king.
func castleTargets(board *chess.Board, king *chess.Piece, from chess.Square) []chess.Square {
	var targets []chess.Square
	for _, dc := range []int{-2, 2} {
		to := from.Offset(0, dc)
		if !to.Valid() {
			continue
		}
		if _, ok := resolveCastle(board, king, from, to); ok {
			targets = append(targets, to)
		}
	}
	return targets
}

// castleTransit returns the square the king crosses while castling.
func castleTransit(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, (from.Col+to.Col)/2)
}

// applyCastle moves king and rook together. The rook lands on the square the king crossed.
func applyCastle(board *chess.Board, from, to, rookSq chess.Square) {
	king := board.Get(from)
	rook := board.Get(rookSq)

	board.Set(from, nil)
	board.Set(rookSq, nil)
	board.Set(to, king)
	board.Set(castleTransit(from, to), rook)

	king.Moved = true
	rook.Moved = true
	board.ClearEnPassant()
}
