package engine

import "github.com/lgbarn/chess48-go/internal/chess"

// play validates and applies a move against board, returning the position
// after the move with the turn passed to the opponent. The input board is
// never modified: the move is made on a private copy, and the copy is only
// returned when the move is legal. A NoPiece promotion means queen.
func play(board *chess.Board, from, to chess.Square, promotion chess.PieceKind) (*chess.Board, chess.Move, chess.Result) {
	move := chess.Move{From: from, To: to}

	if !from.Valid() {
		return nil, move, chess.InvalidLocation
	}
	if !to.Valid() {
		return nil, move, chess.InvalidDestination
	}
	piece := board.Get(from)
	if piece == nil {
		return nil, move, chess.NoPieceAtSource
	}
	if piece.Colour != board.ToMove {
		return nil, move, chess.WrongColorForTurn
	}
	if promotion == chess.NoPiece {
		promotion = chess.Queen
	}
	if !promotion.IsPromotion() {
		return nil, move, chess.InvalidPromotionChoice
	}

	res, ok := ResolveMove(board, from, to)
	if !ok {
		return nil, move, chess.InvalidMove
	}

	mover := piece.Colour
	next := board.Copy()

	if res.Kind == Castle {
		if castleCrossesCheck(board, from, to) {
			return nil, move, chess.InvalidMove
		}
		applyCastle(next, from, to, res.Square)
	} else {
		if applyMove(next, from, to, res, promotion) {
			move.Promotion = promotion
		}
	}

	if IsInCheck(next, mover) {
		return nil, move, chess.MovedIntoCheck
	}

	next.ToMove = mover.Opposite()
	return next, move, chess.Success
}

// castleCrossesCheck reports whether the king would stand in check on the
// square it crosses while castling.
func castleCrossesCheck(board *chess.Board, from, to chess.Square) bool {
	probe := board.Copy()
	king := probe.Get(from)
	probe.Set(from, nil)
	probe.Set(castleTransit(from, to), king)
	return IsInCheck(probe, king.Colour)
}

// applyMove moves a piece on a scratch board, removing any captured piece,
// updating en passant eligibility and movement flags and promoting a pawn
// that reaches the last rank. It reports whether a promotion happened.
func applyMove(board *chess.Board, from, to chess.Square, res Resolution, promotion chess.PieceKind) bool {
	piece := board.Get(from)

	if res.Kind == Capture {
		board.Set(res.Square, nil)
	}
	board.Set(from, nil)
	board.Set(to, piece)

	// Only the pawn that has just made its double step stays eligible.
	board.ClearEnPassant()
	if isDoubleStep(piece, from, to) {
		board.SetEnPassant(to)
	}
	piece.Moved = true

	if piece.Kind == chess.Pawn && to.Row == piece.Colour.PromotionRow() {
		promoted := chess.NewPiece(piece.Colour, promotion)
		promoted.Moved = true
		board.Set(to, promoted)
		return true
	}
	return false
}
