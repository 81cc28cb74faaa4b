package engine

import (
	"testing"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/errors"
	"github.com/lgbarn/chess48-go/internal/testutil"
)

func TestToFEN(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{
			name: "initial position",
			want: InitialFEN,
		},
		{
			name:  "after double step",
			moves: []string{"e2 e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "en passant lapses",
			moves: []string{"e2 e4", "g8 f6"},
			want:  "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			name:  "king move loses both rights",
			moves: []string{"e2 e4", "e7 e5", "e1 e2"},
			want:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 0 1",
		},
		{
			name:  "rook move loses one right",
			moves: []string{"h2 h4", "a7 a5", "h1 h3", "a8 a6"},
			want:  "1nbqkbnr/1ppppppp/r7/p7/7P/7R/PPPPPPP1/RNBQKBN1 w Qk - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			testutil.PlayMoves(t, g, tt.moves...)
			testutil.AssertEqual(t, ToFEN(g.Board()), tt.want)
		})
	}
}

func TestNewBoardFromFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
		"8/8/8/3pP3/8/8/8/k6K w - d6 0 1",
		"k1K5/8/8/8/8/8/8/1Q6 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ToFEN(board), fen)
		})
	}
}

func TestNewBoardFromFEN_InitialMatchesLayout(t *testing.T) {
	board, err := NewBoardFromFEN(InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertBoardEqual(t, board, NewInitialBoard())
}

func TestNewBoardFromFEN_State(t *testing.T) {
	board, err := NewBoardFromFEN("r3k2r/8/8/3pP3/8/8/P7/R3K2R w Kq d6 0 1")
	testutil.AssertNoError(t, err)

	if !board.EnPassantEligible(chess.MustParseSquare("d5")) {
		t.Error("d5 pawn should be capturable en passant")
	}
	if !board.Get(chess.MustParseSquare("e5")).Moved {
		t.Error("e5 pawn should count as moved")
	}
	if board.Get(chess.MustParseSquare("a2")).Moved {
		t.Error("a2 pawn should be unmoved")
	}
	if board.Get(chess.MustParseSquare("h1")).Moved || board.Get(chess.MustParseSquare("e1")).Moved {
		t.Error("white king side castling pieces should be unmoved")
	}
	if !board.Get(chess.MustParseSquare("a1")).Moved {
		t.Error("a1 rook should count as moved")
	}

	g := NewGameFromBoard(board)
	testutil.AssertResult(t, g.TakeTurn(chess.MustParseSquare("e5"), chess.MustParseSquare("d6"), chess.NoPiece), chess.Success)
	testutil.AssertResult(t, g.TakeTurn(chess.MustParseSquare("e8"), chess.MustParseSquare("c8"), chess.NoPiece), chess.Success)
	testutil.AssertResult(t, g.TakeTurn(chess.MustParseSquare("e1"), chess.MustParseSquare("c1"), chess.NoPiece), chess.InvalidMove)
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w - - 0 1"},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too long", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side to move", "8/8/8/8/8/8/8/k6K x - - 0 1"},
		{"bad castling letter", "r3k2r/8/8/8/8/8/8/R3K2R w X - 0 1"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1"},
		{"bad en passant square", "8/8/8/8/8/8/8/k6K w - z9 0 1"},
		{"en passant without pawn", "8/8/8/8/8/8/8/k6K w - d6 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}
