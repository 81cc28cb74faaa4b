package engine

import "github.com/lgbarn/chess48-go/internal/chess"

// Destinations lists every pseudo-legal destination of the piece on from:
// squares it could move to if its own king's safety were ignored. Castling
// candidates are included. An empty or off-board square yields nil.
func Destinations(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece == nil {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnTargets(board, piece, from)
	case chess.Knight:
		return pieceTargets(board, piece.Colour, from, knightOffsets)
	case chess.Bishop:
		return slidingTargets(board, piece.Colour, from, true, false)
	case chess.Rook:
		return slidingTargets(board, piece.Colour, from, false, true)
	case chess.Queen:
		return slidingTargets(board, piece.Colour, from, true, true)
	case chess.King:
		targets := pieceTargets(board, piece.Colour, from, kingOffsets)
		return append(targets, castleTargets(board, piece, from)...)
	}

	panic("engine: unrecognised piece kind " + piece.Kind.String())
}

// PseudoLegalMoves lists every pseudo-legal move for the given colour.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		for _, to := range Destinations(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// LegalMoves lists the moves the side to move may actually play.
// Promotions are reported once, with the default queen.
func LegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, m := range PseudoLegalMoves(board, board.ToMove) {
		if _, played, res := play(board, m.From, m.To, chess.NoPiece); res == chess.Success {
			moves = append(moves, played)
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
// Each candidate is tried on its own copy of the board, one ply deep.
func HasLegalMoves(board *chess.Board) bool {
	for _, from := range board.Occupied(board.ToMove) {
		for _, to := range Destinations(board, from) {
			if _, _, res := play(board, from, to, chess.NoPiece); res == chess.Success {
				return true
			}
		}
	}
	return false
}

// Status classifies the position for the side to move: Checkmate,
// Stalemate, or Success when the game goes on.
func Status(board *chess.Board) chess.Result {
	if HasLegalMoves(board) {
		return chess.Success
	}
	if IsInCheck(board, board.ToMove) {
		return chess.Checkmate
	}
	return chess.Stalemate
}
