package engine

import (
	"math/rand"

	"github.com/lgbarn/chess48-go/internal/chess"
)

// RandomMove plays a uniformly random legal move for the side to move.
// The pseudo-legal candidates are shuffled and handed to TakeTurn one by one
// until a move is accepted; a Checkmate or Stalemate result counts as an
// accepted move. It returns false, leaving the game untouched, when no
// candidate is accepted.
func RandomMove(g *Game, rng *rand.Rand) (chess.Move, chess.Result, bool) {
	candidates := PseudoLegalMoves(g.board, g.board.ToMove)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, m := range candidates {
		res := g.TakeTurn(m.From, m.To, chess.NoPiece)
		if res.Applied() {
			return g.moves[len(g.moves)-1], res, true
		}
	}
	return chess.Move{}, chess.Success, false
}
