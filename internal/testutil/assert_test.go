package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess48-go/internal/chess"
)

// Only the passing paths can be exercised here since *testing.T cannot be mocked.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []chess.Square{chess.Sq(6, 4)}, []chess.Square{chess.Sq(6, 4)})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, sentinel, sentinel)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertResult_Success(t *testing.T) {
	AssertResult(t, chess.Checkmate, chess.Checkmate)
	AssertResult(t, chess.Success, chess.Success, "first move")
}

func TestAssertBoardEqual_Success(t *testing.T) {
	b := chess.NewBoard()
	b.Set(chess.Sq(7, 4), chess.W(chess.King))
	AssertBoardEqual(t, b.Copy(), b)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
