// Package session runs a two-player game from text commands.
//
// Each input line is one of:
//
//	e2 e4         a move
//	e7 e8 N       a move with a promotion choice
//	e2 e4 draw?   a move together with a draw offer
//	draw          accept the opponent's draw offer
//	resign        the side to move gives up
//	undo          take back the last move, once per turn
//
// The session tracks who won and why, and produces the game record with
// the result annotations appended after the moves.
package session

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/errors"
	"github.com/lgbarn/chess48-go/internal/notation"
)

// Command words.
const (
	CmdResign    = "resign"
	CmdDraw      = "draw"
	CmdUndo      = "undo"
	CmdOfferDraw = "draw?"
)

// Outcome is the state of the game from the players' point of view.
type Outcome int

const (
	InProgress Outcome = iota
	WhiteWins
	BlackWins
	Drawn
)

// String returns the result notation of an outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// winFor returns the outcome in which colour wins.
func winFor(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Reason says how a finished game ended.
type Reason int

const (
	NoReason Reason = iota
	ByCheckmate
	ByStalemate
	ByResignation
	ByAgreement
)

// String returns the name of a reason.
func (r Reason) String() string {
	switch r {
	case ByCheckmate:
		return "checkmate"
	case ByStalemate:
		return "stalemate"
	case ByResignation:
		return "resignation"
	case ByAgreement:
		return "agreement"
	default:
		return "none"
	}
}

// Event reports what a handled line did.
type Event struct {
	// Move is the move played, zero when the line was not a move.
	Move chess.Move

	// Result of the attempted move; Success for commands.
	Result chess.Result

	// DrawOffered is set when the line offered a draw.
	DrawOffered bool

	// Undone is set when the line took back a move.
	Undone bool

	// Outcome and Reason after the line.
	Outcome Outcome
	Reason  Reason
}

// Session is a game between two players driven by text commands.
type Session struct {
	game *engine.Game

	drawOffered   bool
	drawOfferedBy chess.Colour

	outcome  Outcome
	reason   Reason
	resigned chess.Colour
}

// New starts a session on game.
func New(game *engine.Game) *Session {
	return &Session{game: game}
}

// Game returns the game being played.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Reason returns why the game ended, NoReason while it is in progress.
func (s *Session) Reason() Reason {
	return s.reason
}

// Over reports whether the game has finished.
func (s *Session) Over() bool {
	return s.outcome != InProgress
}

// DrawOffered reports whether a draw offer is waiting for an answer.
func (s *Session) DrawOffered() bool {
	return s.drawOffered
}

// Handle processes one input line.
func (s *Session) Handle(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return s.event(), fmt.Errorf("empty input: %w", errors.ErrInvalidMoveText)
	}
	if s.Over() {
		return s.event(), fmt.Errorf("%s by %s: %w", s.outcome, s.reason, errors.ErrGameOver)
	}

	switch {
	case len(fields) == 1 && fields[0] == CmdResign:
		return s.resign(), nil
	case len(fields) == 1 && fields[0] == CmdDraw:
		return s.acceptDraw()
	case len(fields) == 1 && fields[0] == CmdUndo:
		return s.undo()
	case len(fields) == 3 && fields[2] == CmdOfferDraw:
		return s.move(strings.Join(fields[:2], " "), true)
	default:
		return s.move(strings.Join(fields, " "), false)
	}
}

func (s *Session) event() Event {
	return Event{Result: chess.Success, Outcome: s.outcome, Reason: s.reason}
}

func (s *Session) move(text string, offerDraw bool) (Event, error) {
	m, err := notation.ParseMove(text)
	if err != nil {
		return s.event(), err
	}

	mover := s.game.Turn()
	res := s.game.Play(m)
	if !res.Applied() {
		ev := s.event()
		ev.Result = res
		return ev, fmt.Errorf("%s: %s: %w", text, res, errors.ErrIllegalMove)
	}

	// An unanswered offer lapses once the opponent moves instead.
	s.drawOffered = false
	if offerDraw {
		s.drawOffered = true
		s.drawOfferedBy = mover
	}

	switch res {
	case chess.Checkmate:
		s.finish(winFor(mover), ByCheckmate)
	case chess.Stalemate:
		s.finish(Drawn, ByStalemate)
	}

	moves := s.game.Moves()
	ev := s.event()
	ev.Move = moves[len(moves)-1]
	ev.Result = res
	ev.DrawOffered = offerDraw
	return ev, nil
}

func (s *Session) resign() Event {
	s.resigned = s.game.Turn()
	s.finish(winFor(s.resigned.Opposite()), ByResignation)
	return s.event()
}

func (s *Session) acceptDraw() (Event, error) {
	if !s.drawOffered || s.drawOfferedBy == s.game.Turn() {
		return s.event(), errors.ErrNoDrawOffer
	}
	s.finish(Drawn, ByAgreement)
	return s.event(), nil
}

func (s *Session) undo() (Event, error) {
	if err := s.game.UndoLimited(); err != nil {
		return s.event(), err
	}
	s.drawOffered = false
	ev := s.event()
	ev.Undone = true
	return ev, nil
}

func (s *Session) finish(outcome Outcome, reason Reason) {
	s.outcome = outcome
	s.reason = reason
	s.drawOffered = false
}

// Annotations returns the lines recorded after the moves of a finished
// game: who resigned, who won, or how the game was drawn.
func (s *Session) Annotations() []string {
	switch s.reason {
	case ByCheckmate:
		return []string{winnerLine(s.outcome)}
	case ByStalemate:
		return []string{"Stalemate"}
	case ByResignation:
		return []string{s.resigned.String() + " resigns", winnerLine(s.outcome)}
	case ByAgreement:
		return []string{CmdDraw}
	default:
		return nil
	}
}

func winnerLine(o Outcome) string {
	if o == WhiteWins {
		return chess.White.String() + " wins"
	}
	return chess.Black.String() + " wins"
}

// Record returns the move list followed by the result annotations.
func (s *Session) Record() string {
	return notation.ExportWithAnnotations(s.game.Moves(), s.Annotations()...)
}
