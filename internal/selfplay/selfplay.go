// Package selfplay plays batches of games between two random movers.
package selfplay

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/config"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/hashing"
	"github.com/lgbarn/chess48-go/internal/notation"
	"github.com/lgbarn/chess48-go/internal/worker"
)

// Reasons a game stopped.
const (
	ReasonCheckmate = "checkmate"
	ReasonStalemate = "stalemate"
	ReasonPlyLimit  = "ply limit"
	ReasonNoMoves   = "no moves"
)

// Game is one finished self-play game.
type Game struct {
	Index int
	Seed  int64
	Moves []chess.Move

	// Result of the last move played, Success if the game stopped
	// without a mate.
	Result chess.Result

	Start *chess.Board
	Final *chess.Board

	// Duplicate is set when an earlier game of the batch ended in the
	// same position.
	Duplicate bool
}

// Plies returns the number of half-moves played.
func (g *Game) Plies() int {
	return len(g.Moves)
}

// Winner returns the side that delivered mate.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.Result != chess.Checkmate {
		return chess.White, false
	}
	// The mated side is left to move.
	return g.Final.ToMove.Opposite(), true
}

// Reason says why the game stopped.
func (g *Game) Reason() string {
	switch {
	case g.Result == chess.Checkmate:
		return ReasonCheckmate
	case g.Result == chess.Stalemate:
		return ReasonStalemate
	case engine.HasLegalMoves(g.Final):
		return ReasonPlyLimit
	default:
		return ReasonNoMoves
	}
}

// Annotations returns the lines written after the moves: the winner or
// stalemate line, then the optional FEN, ply and seed lines.
func (g *Game) Annotations(ann *config.AnnotationConfig) []string {
	var lines []string
	switch g.Result {
	case chess.Checkmate:
		winner, _ := g.Winner()
		lines = append(lines, winner.String()+" wins")
	case chess.Stalemate:
		lines = append(lines, "Stalemate")
	}
	if ann == nil {
		return lines
	}
	if ann.AddFEN {
		lines = append(lines, "FEN "+engine.ToFEN(g.Final))
	}
	if ann.AddPlyCount {
		lines = append(lines, fmt.Sprintf("Plies %d", g.Plies()))
	}
	if ann.AddSeed {
		lines = append(lines, fmt.Sprintf("Seed %d", g.Seed))
	}
	return lines
}

// MoveList renders the game as a move list with its annotation lines.
func (g *Game) MoveList(ann *config.AnnotationConfig) string {
	return notation.ExportWithAnnotations(g.Moves, g.Annotations(ann)...)
}

// Play plays one random game from the standard starting position.
func Play(seed int64, maxPlies int) *Game {
	return PlayFrom(engine.NewInitialBoard(), seed, maxPlies)
}

// PlayFrom plays one random game from board, stopping at checkmate,
// stalemate, or after maxPlies half-moves (0 means no limit). The same
// seed and board always produce the same game.
func PlayFrom(board *chess.Board, seed int64, maxPlies int) *Game {
	g := engine.NewGameFromBoard(board)
	rng := rand.New(rand.NewSource(seed))

	res := chess.Success
	for maxPlies == 0 || g.Ply() < maxPlies {
		_, r, ok := engine.RandomMove(g, rng)
		if !ok {
			break
		}
		res = r
		if res.Terminal() {
			break
		}
	}

	return &Game{
		Seed:   seed,
		Moves:  g.Moves(),
		Result: res,
		Start:  board.Copy(),
		Final:  g.Board(),
	}
}

// Stats summarises a batch.
type Stats struct {
	Played     int
	Checkmates int
	Stalemates int
	Duplicates int
}

// ProgressInterval is how often a running batch reports progress at
// verbosity 2.
var ProgressInterval = time.Second

// Run plays n games on a worker pool. Game i is played with seed
// cfg.Seed+i from cfg.StartFEN (or the standard position) and is capped
// at cfg.MaxPlies. Games come back ordered by index, with duplicate final
// positions flagged in that order. When ctx ends early the games finished
// so far are returned with ctx's error.
func Run(ctx context.Context, cfg *config.Config, n int) ([]*Game, Stats, error) {
	start := engine.NewInitialBoard()
	if cfg.StartFEN != "" {
		board, err := engine.NewBoardFromFEN(cfg.StartFEN)
		if err != nil {
			return nil, Stats{}, err
		}
		start = board
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		g := PlayFrom(start, item.Seed, item.MaxPlies)
		return worker.ProcessResult{
			Index:  item.Index,
			Seed:   item.Seed,
			Moves:  g.Moves,
			Result: g.Result,
			Final:  g.Final,
		}
	}

	bufferSize := n
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(processFunc, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i := 0; i < n; i++ {
			item := worker.WorkItem{Index: i, Seed: cfg.Seed + int64(i), MaxPlies: cfg.MaxPlies}
			if !pool.Submit(ctx, item) {
				break
			}
		}
		pool.Close()
	}()

	var logMu sync.Mutex
	logf := func(format string, args ...any) {
		logMu.Lock()
		defer logMu.Unlock()
		fmt.Fprintf(cfg.LogFile, format, args...)
	}

	detector := hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	var played int64
	stopProgress := reportProgress(cfg, logf, n, &played, detector)

	// Results arrive in completion order; pending holds those that are
	// ahead of the next index so duplicates are flagged in index order.
	games := make([]*Game, 0, n)
	pending := make(map[int]worker.ProcessResult)
	var stats Stats

	for result := range pool.Results() {
		pending[result.Index] = result
		for {
			r, ok := pending[len(games)]
			if !ok {
				break
			}
			delete(pending, len(games))

			g := &Game{
				Index:  r.Index,
				Seed:   r.Seed,
				Moves:  r.Moves,
				Result: r.Result,
				Start:  start,
				Final:  r.Final,
			}
			g.Duplicate = detector.CheckAndAdd(g.Plies(), g.Final)
			games = append(games, g)
			atomic.AddInt64(&played, 1)

			stats.Played++
			switch g.Result {
			case chess.Checkmate:
				stats.Checkmates++
			case chess.Stalemate:
				stats.Stalemates++
			}

			if cfg.Verbosity > 1 {
				logf("game %d: seed %d, %d plies, %s\n", g.Index+1, g.Seed, g.Plies(), g.Reason())
			}
		}
	}
	stopProgress()
	stats.Duplicates = detector.DuplicateCount()

	if err := ctx.Err(); err != nil {
		return games, stats, err
	}
	return games, stats, nil
}

// reportProgress logs a progress line every ProgressInterval until the
// returned function is called.
func reportProgress(cfg *config.Config, logf func(string, ...any), total int, played *int64, detector *hashing.ThreadSafeDuplicateDetector) func() {
	if cfg.Verbosity < 2 || ProgressInterval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				logf("progress: %d/%d games, %d duplicates\n",
					atomic.LoadInt64(played), total, detector.DuplicateCount())
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}
