package engine

import (
	"testing"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/errors"
	"github.com/lgbarn/chess48-go/internal/testutil"
)

func sq(t *testing.T, name string) chess.Square {
	t.Helper()
	s, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

func TestTakeTurn_OpeningMoves(t *testing.T) {
	g := NewGame()

	steps := []struct {
		move     string
		want     chess.Result
		wantTurn chess.Colour
	}{
		{"e2 e4", chess.Success, chess.Black},
		{"e7 e5", chess.Success, chess.White},
		{"g1 f3", chess.Success, chess.Black},
		{"e8 e6", chess.InvalidMove, chess.Black},
		{"e8 e7", chess.Success, chess.White},
	}

	for _, step := range steps {
		m := testutil.MustMove(t, step.move)
		got := g.TakeTurn(m.From, m.To, m.Promotion)
		testutil.AssertResult(t, got, step.want, step.move)
		if g.Turn() != step.wantTurn {
			t.Errorf("after %s Turn() = %v; want %v", step.move, g.Turn(), step.wantTurn)
		}
	}
}

func TestTakeTurn_KingCannotLeapTwoRanks(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "e2 e4")

	// e8 to e7 is blocked by Black's own pawn.
	testutil.AssertResult(t, g.TakeTurn(sq(t, "e8"), sq(t, "e7"), chess.NoPiece), chess.InvalidMove)
	testutil.AssertResult(t, g.TakeTurn(sq(t, "e8"), sq(t, "e6"), chess.NoPiece), chess.InvalidMove)
}

func TestTakeTurn_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		from, to  chess.Square
		promotion chess.PieceKind
		want      chess.Result
	}{
		{"source off board", chess.Sq(-1, 0), chess.Sq(4, 4), chess.NoPiece, chess.InvalidLocation},
		{"source column off board", chess.Sq(6, 8), chess.Sq(4, 4), chess.NoPiece, chess.InvalidLocation},
		{"destination off board", chess.Sq(6, 4), chess.Sq(8, 4), chess.NoPiece, chess.InvalidDestination},
		{"empty source", chess.Sq(4, 4), chess.Sq(3, 4), chess.NoPiece, chess.NoPieceAtSource},
		{"black piece on white turn", chess.Sq(1, 4), chess.Sq(3, 4), chess.NoPiece, chess.WrongColorForTurn},
		{"king promotion", chess.Sq(6, 4), chess.Sq(4, 4), chess.King, chess.InvalidPromotionChoice},
		{"pawn promotion", chess.Sq(6, 4), chess.Sq(4, 4), chess.Pawn, chess.InvalidPromotionChoice},
		{"pawn three squares", chess.Sq(6, 4), chess.Sq(3, 4), chess.NoPiece, chess.InvalidMove},
		{"rook through pawn", chess.Sq(7, 0), chess.Sq(5, 0), chess.NoPiece, chess.InvalidMove},
		{"null move", chess.Sq(6, 4), chess.Sq(6, 4), chess.NoPiece, chess.InvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			before := g.Board()

			got := g.TakeTurn(tt.from, tt.to, tt.promotion)

			testutil.AssertResult(t, got, tt.want)
			testutil.AssertBoardEqual(t, g.Board(), before)
			if g.Ply() != 0 {
				t.Errorf("Ply() = %d; want 0", g.Ply())
			}
		})
	}
}

func TestTakeTurnAt(t *testing.T) {
	g := NewGame()
	testutil.AssertResult(t, g.TakeTurnAt(6, 4, 4, 4), chess.Success)
	testutil.AssertResult(t, g.TakeTurnAt(9, 0, 0, 0), chess.InvalidLocation)
	testutil.AssertResult(t, g.TakeTurnAt(1, 4, 1, -1), chess.InvalidDestination)

	if p := g.PieceAt(sq(t, "e4")); p == nil || p.Kind != chess.Pawn || p.Colour != chess.White {
		t.Errorf("PieceAt(e4) = %v; want wp", p)
	}
}

func TestTakeTurn_FoolsMate(t *testing.T) {
	g := NewGame()
	got := testutil.PlayMoves(t, g, "f2 f3", "e7 e5", "g2 g4", "d8 h4")

	testutil.AssertResult(t, got, chess.Checkmate)
	testutil.AssertResult(t, g.Status(), chess.Checkmate)
	if !g.InCheck(chess.White) {
		t.Error("InCheck(White) = false; want true")
	}
}

func TestTakeTurn_Stalemate(t *testing.T) {
	g, err := NewGameFromLayout("bK ## wK\n\n\n\n\n\n\n## wQ")
	testutil.AssertNoError(t, err)

	got := testutil.PlayMoves(t, g, "b1 b6")

	testutil.AssertResult(t, got, chess.Stalemate)
	if g.InCheck(chess.Black) {
		t.Error("InCheck(Black) = true; want false")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		toMove chess.Colour
		want   chess.Result
	}{
		{"starting position", StartingLayout, chess.White, chess.Success},
		{"bare kings", "bK\n\n\n\n\n\n\n## ## ## ## ## ## ## wK", chess.White, chess.Success},
		{"lone king boxed in by king and pawn", "## ## ## ## ## ## ## bK\n## ## ## ## ## wK\n## ## ## ## ## ## wp", chess.Black, chess.Stalemate},
		{"lone king boxed in by queen", "bK ## wK\n\n## wQ", chess.Black, chess.Stalemate},
		{"back rank mate", "wR ## ## ## ## ## ## bK\n## ## ## ## ## ## bp bp\n\n\n\n\n\n## ## ## ## wK", chess.Black, chess.Checkmate},
		{"check with escape", "wR ## ## ## ## ## ## bK\n## ## ## ## ## ## bp\n\n\n\n\n\n## ## ## ## wK", chess.Black, chess.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustParseLayout(tt.layout)
			board.ToMove = tt.toMove
			testutil.AssertResult(t, Status(board), tt.want)
		})
	}
}

func TestTakeTurn_MovedIntoCheck(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		move   string
	}{
		{
			name:   "king steps onto open rook file",
			layout: "## ## ## bR\n\n\n\n\n\n\n## ## ## ## wK",
			move:   "e1 d1",
		},
		{
			name:   "pinned bishop leaves the file",
			layout: "## ## ## ## bR\n\n\n\n\n\n## ## ## ## wB\n## ## ## ## wK",
			move:   "e2 d3",
		},
		{
			name:   "king captures defended piece",
			layout: "\n\n\n\n\n## ## ## bp\n## ## ## ## bp\n## ## ## ## wK",
			move:   "e1 e2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromLayout(tt.layout)
			testutil.AssertNoError(t, err)
			before := g.Board()

			m := testutil.MustMove(t, tt.move)
			testutil.AssertResult(t, g.TakeTurn(m.From, m.To, m.Promotion), chess.MovedIntoCheck)
			testutil.AssertBoardEqual(t, g.Board(), before)
		})
	}
}

func TestTakeTurn_Castling(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		move     string
		want     chess.Result
		wantKing string
		wantRook string
	}{
		{
			name:     "king side",
			layout:   "## ## ## ## bK\n\n\n\n\n\n\n## ## ## ## wK ## ## wR",
			move:     "e1 g1",
			want:     chess.Success,
			wantKing: "g1",
			wantRook: "f1",
		},
		{
			name:     "queen side",
			layout:   "## ## ## ## bK\n\n\n\n\n\n\nwR ## ## ## wK",
			move:     "e1 c1",
			want:     chess.Success,
			wantKing: "c1",
			wantRook: "d1",
		},
		{
			name:   "blocked by knight",
			layout: "## ## ## ## bK\n\n\n\n\n\n\n## ## ## ## wK ## wN wR",
			move:   "e1 g1",
			want:   chess.InvalidMove,
		},
		{
			name:   "no rook",
			layout: "## ## ## ## bK\n\n\n\n\n\n\n## ## ## ## wK",
			move:   "e1 g1",
			want:   chess.InvalidMove,
		},
		{
			name:   "enemy rook in corner",
			layout: "## ## ## ## bK\n\n\n\n\n\n\n## ## ## ## wK ## ## bR",
			move:   "e1 g1",
			want:   chess.InvalidMove,
		},
		{
			name:   "transit square attacked",
			layout: "## ## ## ## bK bR\n\n\n\n\n\n\n## ## ## ## wK ## ## wR",
			move:   "e1 g1",
			want:   chess.InvalidMove,
		},
		{
			name:   "landing square attacked",
			layout: "## ## ## ## bK ## bR\n\n\n\n\n\n\n## ## ## ## wK ## ## wR",
			move:   "e1 g1",
			want:   chess.MovedIntoCheck,
		},
		{
			// Only the crossed and landing squares are tested.
			name:     "out of check",
			layout:   "bK\n\n\n\n## ## ## ## bR\n\n\n## ## ## ## wK ## ## wR",
			move:     "e1 g1",
			want:     chess.Success,
			wantKing: "g1",
			wantRook: "f1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromLayout(tt.layout)
			testutil.AssertNoError(t, err)

			m := testutil.MustMove(t, tt.move)
			got := g.TakeTurn(m.From, m.To, m.Promotion)
			testutil.AssertResult(t, got, tt.want)
			if tt.want != chess.Success {
				return
			}

			king := g.PieceAt(sq(t, tt.wantKing))
			if king == nil || king.Kind != chess.King || !king.Moved {
				t.Errorf("PieceAt(%s) = %+v; want moved king", tt.wantKing, king)
			}
			rook := g.PieceAt(sq(t, tt.wantRook))
			if rook == nil || rook.Kind != chess.Rook || !rook.Moved {
				t.Errorf("PieceAt(%s) = %+v; want moved rook", tt.wantRook, rook)
			}
			if p := g.PieceAt(m.From); p != nil {
				t.Errorf("PieceAt(%s) = %v; want empty", m.From, p)
			}
		})
	}
}

func TestTakeTurn_CastlingWhileInCheck(t *testing.T) {
	g, err := NewGameFromLayout("bK\n\n\n\n## ## ## ## bR\n\n\n## ## ## ## wK ## ## wR")
	testutil.AssertNoError(t, err)

	if !g.InCheck(chess.White) {
		t.Fatal("InCheck(White) = false before castling")
	}
	testutil.AssertResult(t, g.TakeTurn(sq(t, "e1"), sq(t, "g1"), chess.NoPiece), chess.Success)
	if g.InCheck(chess.White) {
		t.Error("InCheck(White) = true after castling")
	}
	testutil.AssertEqual(t, g.Turn(), chess.Black)
}

func TestTakeTurn_CastlingAfterKingMoved(t *testing.T) {
	g, err := NewGameFromLayout("## ## ## ## bK\n\n\n\n\n\n\n## ## ## ## wK ## ## wR")
	testutil.AssertNoError(t, err)

	testutil.PlayMoves(t, g, "e1 f1", "e8 d8", "f1 e1", "d8 e8")
	testutil.AssertResult(t, g.TakeTurn(sq(t, "e1"), sq(t, "g1"), chess.NoPiece), chess.InvalidMove)
}

func TestTakeTurn_EnPassant(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "e2 e4", "a7 a6", "e4 e5", "d7 d5")

	got := g.TakeTurn(sq(t, "e5"), sq(t, "d6"), chess.NoPiece)
	testutil.AssertResult(t, got, chess.Success)

	if p := g.PieceAt(sq(t, "d5")); p != nil {
		t.Errorf("PieceAt(d5) = %v; want captured pawn removed", p)
	}
	if p := g.PieceAt(sq(t, "d6")); p == nil || p.Kind != chess.Pawn || p.Colour != chess.White {
		t.Errorf("PieceAt(d6) = %v; want wp", p)
	}
}

func TestTakeTurn_EnPassantLastsOnePly(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "d2 d4", "h7 h6", "d4 d5", "e7 e5", "a2 a3", "h6 h5")

	// Black's e-pawn advanced two squares a full move ago.
	got := g.TakeTurn(sq(t, "d5"), sq(t, "e6"), chess.NoPiece)
	testutil.AssertResult(t, got, chess.InvalidMove)
}

func TestTakeTurn_EnPassantOnlyAfterDoubleStep(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "e2 e4", "d7 d6", "e4 e5", "d6 d5")

	// d7-d6-d5 took two single steps, so no en passant.
	got := g.TakeTurn(sq(t, "e5"), sq(t, "d6"), chess.NoPiece)
	testutil.AssertResult(t, got, chess.InvalidMove)
}

func TestTakeTurn_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.PieceKind
		want      chess.PieceKind
	}{
		{"default queen", chess.NoPiece, chess.Queen},
		{"queen", chess.Queen, chess.Queen},
		{"rook", chess.Rook, chess.Rook},
		{"bishop", chess.Bishop, chess.Bishop},
		{"knight", chess.Knight, chess.Knight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameFromLayout("## ## ## ## ## ## ## bK\nwp\n\n\n\n\n\n## ## ## ## wK")
			testutil.AssertNoError(t, err)

			got := g.TakeTurn(sq(t, "a7"), sq(t, "a8"), tt.promotion)
			if !got.Applied() {
				t.Fatalf("TakeTurn(a7 a8) = %v; want applied", got)
			}

			p := g.PieceAt(sq(t, "a8"))
			if p == nil || p.Kind != tt.want || p.Colour != chess.White {
				t.Errorf("PieceAt(a8) = %v; want white %v", p, tt.want)
			}
			moves := g.Moves()
			if moves[0].Promotion != tt.want {
				t.Errorf("recorded promotion = %v; want %v", moves[0].Promotion, tt.want)
			}
		})
	}
}

func TestTakeTurn_NonPromotingMoveRecordsNoPromotion(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "e2 e4")
	testutil.AssertEqual(t, g.Moves(), []chess.Move{{From: sq(t, "e2"), To: sq(t, "e4")}})
}

func TestUndo(t *testing.T) {
	g := NewGame()
	start := g.Board()

	testutil.AssertErrorIs(t, g.Undo(), errors.ErrNoHistory)

	testutil.PlayMoves(t, g, "e2 e4")
	afterFirst := g.Board()
	testutil.PlayMoves(t, g, "d7 d5", "e4 d5")

	testutil.AssertNoError(t, g.Undo())
	testutil.AssertNoError(t, g.Undo())
	testutil.AssertBoardEqual(t, g.Board(), afterFirst)
	if g.Turn() != chess.Black {
		t.Errorf("Turn() = %v; want Black", g.Turn())
	}

	testutil.AssertNoError(t, g.Undo())
	testutil.AssertBoardEqual(t, g.Board(), start)
	if g.Ply() != 0 {
		t.Errorf("Ply() = %d; want 0", g.Ply())
	}
	testutil.AssertErrorIs(t, g.Undo(), errors.ErrNoHistory)
}

func TestUndo_RestoresCastlingAndEnPassant(t *testing.T) {
	g, err := NewGameFromLayout("## ## ## ## bK\n## ## ## bp\n\n## ## ## ## wp\n\n\n\n## ## ## ## wK ## ## wR")
	testutil.AssertNoError(t, err)
	testutil.PlayMoves(t, g, "e1 g1")
	testutil.AssertNoError(t, g.Undo())
	testutil.AssertResult(t, g.TakeTurn(sq(t, "e1"), sq(t, "g1"), chess.NoPiece), chess.Success)

	testutil.PlayMoves(t, g, "d7 d5")
	before := g.Board()
	testutil.PlayMoves(t, g, "e5 d6")
	testutil.AssertNoError(t, g.Undo())
	testutil.AssertBoardEqual(t, g.Board(), before)
	testutil.AssertResult(t, g.TakeTurn(sq(t, "e5"), sq(t, "d6"), chess.NoPiece), chess.Success)
}

func TestUndoLimited(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "e2 e4", "e7 e5")

	testutil.AssertNoError(t, g.UndoLimited())
	testutil.AssertErrorIs(t, g.UndoLimited(), errors.ErrUndoUsed)
	if g.Ply() != 1 {
		t.Errorf("Ply() = %d; want 1", g.Ply())
	}

	// A completed turn re-arms the limiter.
	testutil.PlayMoves(t, g, "c7 c5")
	testutil.AssertNoError(t, g.UndoLimited())
}

func TestUndoLimited_EmptyHistoryKeepsLimiter(t *testing.T) {
	g := NewGame()
	testutil.AssertErrorIs(t, g.UndoLimited(), errors.ErrNoHistory)

	testutil.PlayMoves(t, g, "e2 e4")
	testutil.AssertNoError(t, g.UndoLimited())
}

func TestGame_AccessorsReturnCopies(t *testing.T) {
	g := NewGame()

	b := g.Board()
	b.Set(sq(t, "e1"), nil)
	if g.PieceAt(sq(t, "e1")) == nil {
		t.Error("mutating Board() copy changed the game")
	}

	p := g.PieceAt(sq(t, "e2"))
	p.Moved = true
	if g.PieceAt(sq(t, "e2")).Moved {
		t.Error("mutating PieceAt() copy changed the game")
	}

	testutil.PlayMoves(t, g, "e2 e4")
	moves := g.Moves()
	moves[0] = chess.Move{}
	if g.Moves()[0] == (chess.Move{}) {
		t.Error("mutating Moves() copy changed the game")
	}
}

func TestNewGameFromBoard_Copies(t *testing.T) {
	b := NewInitialBoard()
	g := NewGameFromBoard(b)
	b.Set(sq(t, "e2"), nil)

	if g.PieceAt(sq(t, "e2")) == nil {
		t.Error("NewGameFromBoard shares the caller's board")
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	g := NewGame()
	testutil.PlayMoves(t, g, "e2 e4", "f7 f6", "d1 h5")

	board := g.Board()
	for _, m := range LegalMoves(board) {
		next, _, res := play(board, m.From, m.To, m.Promotion)
		if res != chess.Success {
			t.Fatalf("play(%v) = %v; want Success", m, res)
		}
		if IsInCheck(next, chess.Black) {
			t.Errorf("legal move %v leaves Black in check", m)
		}
	}
	// g7-g6 is the only way out of check.
	testutil.AssertEqual(t, LegalMoves(board), []chess.Move{{From: sq(t, "g7"), To: sq(t, "g6")}})
}
