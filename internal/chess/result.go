package chess

// Result is the outcome of an attempt to take a turn.
type Result int

const (
	Success Result = iota
	InvalidLocation
	InvalidDestination
	NoPieceAtSource
	WrongColorForTurn
	InvalidPromotionChoice
	InvalidMove
	MovedIntoCheck
	Checkmate
	Stalemate
)

var resultNames = []string{
	"Success",
	"Invalid location",
	"Invalid destination",
	"No piece specified",
	"Wrong piece color",
	"Invalid promotion choice",
	"Invalid move",
	"Moved into check",
	"Checkmate",
	"Stalemate",
}

// String returns the human readable form of a result.
func (r Result) String() string {
	if r >= 0 && int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "Unknown result"
}

// Applied reports whether the move was played (Success, Checkmate or Stalemate).
func (r Result) Applied() bool {
	return r == Success || r.Terminal()
}

// Terminal reports whether the result ends the game.
func (r Result) Terminal() bool {
	return r == Checkmate || r == Stalemate
}
