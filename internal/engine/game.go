package engine

import (
	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/errors"
)

// Game is the board state machine. It owns the live board, the list of
// moves played and a snapshot of the board before each of them.
//
// The live board is never modified in place: every turn is evaluated on a
// copy which replaces the live board only once the move is known to be
// legal. Boards handed out by Board are copies as well.
type Game struct {
	board *chess.Board

	// moves[i] was played from snapshots[i]; the two always have equal length.
	moves     []chess.Move
	snapshots []*chess.Board

	// canUndo arms UndoLimited; it is re-armed by every completed turn.
	canUndo bool
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	return NewGameFromBoard(NewInitialBoard())
}

// NewGameFromBoard creates a game starting from a copy of board.
func NewGameFromBoard(board *chess.Board) *Game {
	return &Game{board: board.Copy(), canUndo: true}
}

// NewGameFromLayout creates a game from the textual layout grammar, White to move.
func NewGameFromLayout(layout string) (*Game, error) {
	board, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	return &Game{board: board, canUndo: true}, nil
}

// TakeTurn plays a move for the side to move. A NoPiece promotion means
// queen. Any result other than Success, Checkmate or Stalemate leaves the
// game exactly as it was. After Checkmate or Stalemate the caller should
// stop taking turns.
func (g *Game) TakeTurn(from, to chess.Square, promotion chess.PieceKind) chess.Result {
	next, move, res := play(g.board, from, to, promotion)
	if res != chess.Success {
		return res
	}

	g.snapshots = append(g.snapshots, g.board)
	g.moves = append(g.moves, move)
	g.board = next
	g.canUndo = true

	return Status(next)
}

// TakeTurnAt is TakeTurn with raw row/column coordinates and queen promotion.
func (g *Game) TakeTurnAt(row, col, destRow, destCol int) chess.Result {
	return g.TakeTurn(chess.Sq(row, col), chess.Sq(destRow, destCol), chess.Queen)
}

// Play takes a turn from a recorded move.
func (g *Game) Play(m chess.Move) chess.Result {
	return g.TakeTurn(m.From, m.To, m.Promotion)
}

// Undo takes back the last move, restoring the board and turn from before it.
func (g *Game) Undo() error {
	n := len(g.snapshots)
	if n == 0 {
		return errors.ErrNoHistory
	}
	g.board = g.snapshots[n-1]
	g.snapshots[n-1] = nil
	g.snapshots = g.snapshots[:n-1]
	g.moves = g.moves[:n-1]
	return nil
}

// UndoLimited is Undo restricted to once per completed turn.
func (g *Game) UndoLimited() error {
	if !g.canUndo {
		return errors.ErrUndoUsed
	}
	if err := g.Undo(); err != nil {
		return err
	}
	g.canUndo = false
	return nil
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// InCheck reports whether the given colour's king is currently in check.
func (g *Game) InCheck(colour chess.Colour) bool {
	return IsInCheck(g.board, colour)
}

// Status classifies the current position for the side to move.
func (g *Game) Status() chess.Result {
	return Status(g.board)
}

// PieceAt returns a copy of the piece on sq, or nil.
func (g *Game) PieceAt(sq chess.Square) *chess.Piece {
	return g.board.Get(sq).Copy()
}

// Board returns a copy of the live board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	moves := make([]chess.Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.moves)
}

// String renders the live board as an ASCII grid.
func (g *Game) String() string {
	return Render(g.board)
}

// Grid returns the piece codes of the live board, "" for empty squares.
func (g *Game) Grid() [chess.BoardSize][chess.BoardSize]string {
	return Grid(g.board)
}
