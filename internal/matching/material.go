package matching

import (
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

// pieceCounts holds the number of pieces of each kind for one side.
type pieceCounts [chess.King + 1]int

// MaterialMatcher matches games that reach a material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       [2]pieceCounts
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn in either case.
// With exact set the sides must have exactly the listed pieces; otherwise
// at least them.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}
	white, black, _ := strings.Cut(pattern, ":")
	mm.want[chess.White] = parseCounts(white)
	mm.want[chess.Black] = parseCounts(black)
	return mm
}

func parseCounts(s string) pieceCounts {
	var counts pieceCounts
	for _, c := range strings.ToUpper(s) {
		if c == 'P' {
			counts[chess.Pawn]++
			continue
		}
		if kind, ok := chess.KindFromLetter(byte(c)); ok {
			counts[kind]++
		}
	}
	return counts
}

// Match reports whether any position of the game has the material.
func (mm *MaterialMatcher) Match(game *selfplay.Game) bool {
	return anyPosition(game, mm.matchPosition)
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return "MaterialMatcher(exact " + mm.pattern + ")"
	}
	return "MaterialMatcher(" + mm.pattern + ")"
}

func (mm *MaterialMatcher) matchPosition(board *chess.Board) bool {
	var have [2]pieceCounts
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.Occupied(colour) {
			have[colour][board.Get(sq).Kind]++
		}
	}

	for side := range have {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			got, want := have[side][kind], mm.want[side][kind]
			if got < want || (mm.exactMatch && got != want) {
				return false
			}
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
