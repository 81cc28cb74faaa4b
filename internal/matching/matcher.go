// Package matching selects self-play games by the positions they pass
// through.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

// GameMatcher is the interface for all game matching implementations.
type GameMatcher interface {
	// Match returns true if the game matches the matcher's criteria.
	Match(game *selfplay.Game) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple GameMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements GameMatcher. An empty composite matches every game in
// MatchAll mode and none in MatchAny mode.
func (c *CompositeMatcher) Match(game *selfplay.Game) bool {
	if len(c.matchers) == 0 {
		return c.mode == MatchAll
	}

	for _, m := range c.matchers {
		if m.Match(game) == (c.mode == MatchAny) {
			return c.mode == MatchAny
		}
	}
	return c.mode == MatchAll
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers in the composite.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// anyPosition calls match on the start position of game and on the
// position after each move, stopping at the first true.
func anyPosition(game *selfplay.Game, match func(*chess.Board) bool) bool {
	g := engine.NewGameFromBoard(game.Start)
	if match(g.Board()) {
		return true
	}
	for _, m := range game.Moves {
		if !g.Play(m).Applied() {
			return false
		}
		if match(g.Board()) {
			return true
		}
	}
	return false
}
