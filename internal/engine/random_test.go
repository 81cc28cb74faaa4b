package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/testutil"
)

func TestRandomMove_PlaysLegalMove(t *testing.T) {
	g := NewGame()
	rng := rand.New(rand.NewSource(1))

	m, res, ok := RandomMove(g, rng)
	if !ok {
		t.Fatal("RandomMove() found no move in the starting position")
	}
	testutil.AssertResult(t, res, chess.Success)
	testutil.AssertEqual(t, g.Moves(), []chess.Move{m})
	if g.Turn() != chess.Black {
		t.Errorf("Turn() = %v; want Black", g.Turn())
	}
}

func TestRandomMove_NoMoves(t *testing.T) {
	board := MustParseLayout("bK ## wK\n\n## wQ")
	board.ToMove = chess.Black
	g := NewGameFromBoard(board)
	before := g.Board()

	_, _, ok := RandomMove(g, rand.New(rand.NewSource(1)))

	if ok {
		t.Error("RandomMove() = ok in a stalemate; want false")
	}
	testutil.AssertBoardEqual(t, g.Board(), before)
}

func TestRandomMove_TakesOnlyWayOutOfCheck(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "e2 e4", "f7 f6", "d1 h5")

	m, res, ok := RandomMove(g, rand.New(rand.NewSource(3)))
	if !ok {
		t.Fatal("RandomMove() found no move")
	}
	testutil.AssertResult(t, res, chess.Success)
	testutil.AssertEqual(t, m, chess.Move{From: chess.MustParseSquare("g7"), To: chess.MustParseSquare("g6")})
}

func TestRandomMove_TerminalResults(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGame()
		rng := rand.New(rand.NewSource(seed))

		for ply := 0; ply < 400; ply++ {
			_, res, ok := RandomMove(g, rng)
			if !ok {
				t.Fatalf("seed %d: RandomMove() found no move at ply %d without a terminal result\n%s", seed, ply, g)
			}
			if !res.Terminal() {
				continue
			}

			testutil.AssertResult(t, g.Status(), res, "seed %d", seed)
			if _, _, ok := RandomMove(g, rng); ok {
				t.Errorf("seed %d: RandomMove() played after %v", seed, res)
			}
			break
		}
	}
}

func TestRandomMove_Deterministic(t *testing.T) {
	play := func(seed int64) []chess.Move {
		g := NewGame()
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < 40; i++ {
			if _, res, ok := RandomMove(g, rng); !ok || res.Terminal() {
				break
			}
		}
		return g.Moves()
	}

	testutil.AssertEqual(t, play(42), play(42))
}
