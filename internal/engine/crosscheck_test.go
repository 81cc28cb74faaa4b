package engine

import (
	"math/rand"
	"strings"
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/testutil"
)

// uci renders a move the way github.com/notnil/chess expects it: "e2e4", "e7e8q".
func uci(m chess.Move) string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoPiece {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

func newReferenceGame(t *testing.T, fen string) *nchess.Game {
	t.Helper()
	opts := []func(*nchess.Game){nchess.UseNotation(nchess.UCINotation{})}
	if fen != "" {
		fromFEN, err := nchess.FEN(fen)
		if err != nil {
			t.Fatalf("notnil FEN(%q): %v", fen, err)
		}
		opts = append(opts, fromFEN)
	}
	return nchess.NewGame(opts...)
}

func TestCrossCheck_ScriptedGames(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		moves      []string
		wantResult chess.Result
		wantMethod nchess.Method
	}{
		{
			name:       "fools mate",
			moves:      []string{"f2 f3", "e7 e5", "g2 g4", "d8 h4"},
			wantResult: chess.Checkmate,
			wantMethod: nchess.Checkmate,
		},
		{
			name:       "scholars mate",
			moves:      []string{"e2 e4", "e7 e5", "f1 c4", "b8 c6", "d1 h5", "g8 f6", "h5 f7"},
			wantResult: chess.Checkmate,
			wantMethod: nchess.Checkmate,
		},
		{
			name: "castling both sides",
			moves: []string{
				"e2 e4", "d7 d5", "g1 f3", "b8 c6", "f1 e2", "c8 e6",
				"e1 g1", "d8 d7", "d2 d3", "e8 c8",
			},
			wantResult: chess.Success,
			wantMethod: nchess.NoMethod,
		},
		{
			name:       "en passant capture",
			moves:      []string{"e2 e4", "a7 a6", "e4 e5", "d7 d5", "e5 d6", "c7 d6"},
			wantResult: chess.Success,
			wantMethod: nchess.NoMethod,
		},
		{
			name:       "under promotion",
			fen:        "8/P6k/8/8/8/8/7P/K7 w - - 0 1",
			moves:      []string{"a7 a8 N", "h7 g6", "a8 b6"},
			wantResult: chess.Success,
			wantMethod: nchess.NoMethod,
		},
		{
			name:       "queen stalemate",
			fen:        "k1K5/8/8/8/8/8/8/1Q6 w - - 0 1",
			moves:      []string{"b1 b6"},
			wantResult: chess.Stalemate,
			wantMethod: nchess.Stalemate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			if tt.fen != "" {
				board, err := NewBoardFromFEN(tt.fen)
				testutil.AssertNoError(t, err)
				g = NewGameFromBoard(board)
			}
			ref := newReferenceGame(t, tt.fen)

			var last chess.Result
			for _, text := range tt.moves {
				m := testutil.MustMove(t, text)
				last = g.TakeTurn(m.From, m.To, m.Promotion)
				if !last.Applied() {
					t.Fatalf("TakeTurn(%s) = %v", text, last)
				}
				if err := ref.MoveStr(uci(g.Moves()[g.Ply()-1])); err != nil {
					t.Fatalf("reference rejected %s: %v", text, err)
				}
				testutil.AssertEqual(t, Placement(g.Board()), ref.Position().Board().String(), "after %s", text)
			}

			testutil.AssertResult(t, last, tt.wantResult)
			if ref.Method() != tt.wantMethod {
				t.Errorf("reference method = %v; want %v", ref.Method(), tt.wantMethod)
			}
		})
	}
}

// Random games are replayed move by move on the reference implementation.
// Castling out of check is accepted here but not by the reference, so a
// game stops being compared at that point.
func TestCrossCheck_RandomGames(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := NewGame()
		ref := newReferenceGame(t, "")
		rng := rand.New(rand.NewSource(seed))

		for ply := 0; ply < 300; ply++ {
			wasInCheck := g.InCheck(g.Turn())
			m, res, ok := RandomMove(g, rng)
			if !ok {
				break
			}

			if err := ref.MoveStr(uci(m)); err != nil {
				if wasInCheck && isCastle(g.Board(), m) {
					break
				}
				t.Fatalf("seed %d ply %d: reference rejected %s: %v\n%s", seed, ply, uci(m), err, g)
			}
			testutil.AssertEqual(t, Placement(g.Board()), ref.Position().Board().String(), "seed %d ply %d", seed, ply)

			switch res {
			case chess.Checkmate:
				if ref.Method() != nchess.Checkmate {
					t.Errorf("seed %d: reference method = %v; want Checkmate", seed, ref.Method())
				}
			case chess.Stalemate:
				if ref.Method() != nchess.Stalemate {
					t.Errorf("seed %d: reference method = %v; want Stalemate", seed, ref.Method())
				}
			}
			if res.Terminal() || ref.Outcome() != nchess.NoOutcome {
				break
			}
		}
	}
}

// isCastle reports whether m, already played on board, was a castling move.
func isCastle(board *chess.Board, m chess.Move) bool {
	p := board.Get(m.To)
	return p != nil && p.Kind == chess.King && m.From.Row == m.To.Row && abs(m.To.Col-m.From.Col) == 2
}
