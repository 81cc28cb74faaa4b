package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess48-go/internal/chess"
)

// TurnTaker is anything that plays moves the way engine.Game does.
type TurnTaker interface {
	TakeTurn(from, to chess.Square, promotion chess.PieceKind) chess.Result
}

// ParseTestMove parses a move such as "e2 e4" or "e7 e8 N".
// It returns false if the text is not a well formed move.
func ParseTestMove(text string) (chess.Move, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 3 {
		return chess.Move{}, false
	}
	from, err := chess.ParseSquare(fields[0])
	if err != nil {
		return chess.Move{}, false
	}
	to, err := chess.ParseSquare(fields[1])
	if err != nil {
		return chess.Move{}, false
	}
	m := chess.Move{From: from, To: to}
	if len(fields) == 3 {
		kind, ok := chess.PromotionFromLetter(fields[2])
		if !ok {
			return chess.Move{}, false
		}
		m.Promotion = kind
	}
	return m, true
}

// MustMove parses a move and calls t.Fatal if it is malformed.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, ok := ParseTestMove(text)
	if !ok {
		t.Fatalf("malformed test move %q", text)
	}
	return m
}

// PlayMoves plays each move in turn and returns the result of the last one.
// It calls t.Fatal as soon as a move is rejected or a move follows the end
// of the game.
func PlayMoves(t *testing.T, g TurnTaker, moves ...string) chess.Result {
	t.Helper()
	last := chess.Success
	for i, text := range moves {
		if last.Terminal() {
			t.Fatalf("move %d %q played after %v", i+1, text, last)
		}
		m := MustMove(t, text)
		last = g.TakeTurn(m.From, m.To, m.Promotion)
		if !last.Applied() {
			t.Fatalf("move %d %q rejected: %v", i+1, text, last)
		}
	}
	return last
}
