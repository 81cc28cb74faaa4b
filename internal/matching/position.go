package matching

import (
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/hashing"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

// FENPattern is a position to look for. Exact patterns are full FEN
// strings compared by Zobrist hash. Other patterns describe the piece
// placement rank by rank, rank 8 first, with wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ or a digit matches empty squares
type FENPattern struct {
	Pattern string
	Label   string // optional label for matched position
	Hash    uint64 // position hash for exact FEN matches
	IsExact bool   // true if this is an exact FEN (no wildcards)
	ranks   []string
}

// PositionMatcher selects games that pass through given positions.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact FEN position to match. Side to move, castling
// rights and the en passant target all take part.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}

	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hashing.GenerateZobristHash(board),
		IsExact: true,
	}
	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[pattern.Hash] = pattern
	return nil
}

// AddPattern adds a placement pattern with wildcards. With includeInvert
// the colour-reversed pattern is added too.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) {
	pm.patterns = append(pm.patterns, &FENPattern{
		Pattern: pattern,
		Label:   label,
		ranks:   strings.Split(pattern, "/"),
	})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(game *selfplay.Game) bool {
	return pm.MatchGame(game) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}

// MatchGame returns the first pattern reached by the game, or nil.
func (pm *PositionMatcher) MatchGame(game *selfplay.Game) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}

	var found *FENPattern
	anyPosition(game, func(board *chess.Board) bool {
		found = pm.matchPosition(board)
		return found != nil
	})
	return found
}

// matchPosition checks if a position matches any pattern.
func (pm *PositionMatcher) matchPosition(board *chess.Board) *FENPattern {
	if len(pm.exactHashes) > 0 {
		if pattern, ok := pm.exactHashes[hashing.GenerateZobristHash(board)]; ok {
			return pattern
		}
	}

	var ranks []string
	for _, pattern := range pm.patterns {
		if pattern.IsExact {
			continue
		}
		if ranks == nil {
			ranks = boardRanks(board)
		}
		if matchRanks(ranks, pattern.ranks) {
			return pattern
		}
	}
	return nil
}

func matchRanks(boardRanks, patternRanks []string) bool {
	if len(patternRanks) == 0 {
		return false
	}
	for i, patternRank := range patternRanks {
		if i >= len(boardRanks) {
			break
		}
		if !matchRank(boardRanks[i], patternRank) {
			return false
		}
	}
	return true
}

// boardRanks returns the placement of each rank, rank 8 first, as eight
// FEN letters with '_' for empty squares.
func boardRanks(board *chess.Board) []string {
	ranks := strings.Split(engine.Placement(board), "/")
	for i, rank := range ranks {
		var sb strings.Builder
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				sb.WriteString(strings.Repeat("_", int(c-'0')))
			} else {
				sb.WriteRune(c)
			}
		}
		ranks[i] = sb.String()
	}
	return ranks
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi, pi := 0, 0

	for pi < len(patternRank) {
		c := patternRank[pi]
		if c == '*' {
			rest := patternRank[pi+1:]
			if rest == "" {
				return true
			}
			for ; bi <= len(boardRank); bi++ {
				if matchRank(boardRank[bi:], rest) {
					return true
				}
			}
			return false
		}

		if c >= '1' && c <= '8' {
			for n := int(c - '0'); n > 0; n-- {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++
			continue
		}

		if bi >= len(boardRank) || !matchSquare(boardRank[bi], c) {
			return false
		}
		bi++
		pi++
	}

	return bi == len(boardRank)
}

// matchSquare matches one square against a single pattern character.
func matchSquare(sq, c byte) bool {
	switch c {
	case '?':
		return true
	case '!':
		return sq != '_'
	case 'A':
		return sq >= 'A' && sq <= 'Z'
	case 'a':
		return sq >= 'a' && sq <= 'z'
	default:
		return sq == c
	}
}

// invertPattern swaps the colours of a pattern and reverses its ranks.
func invertPattern(pattern string) string {
	swapped := strings.Map(func(c rune) rune {
		switch {
		case c >= 'A' && c <= 'Z':
			return c + 'a' - 'A'
		case c >= 'a' && c <= 'z':
			return c - ('a' - 'A')
		default:
			return c
		}
	}, pattern)

	ranks := strings.Split(swapped, "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}
