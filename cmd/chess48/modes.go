package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess48-go/internal/archive"
	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/config"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/errors"
	"github.com/lgbarn/chess48-go/internal/matching"
	"github.com/lgbarn/chess48-go/internal/notation"
	"github.com/lgbarn/chess48-go/internal/output"
	"github.com/lgbarn/chess48-go/internal/selfplay"
	"github.com/lgbarn/chess48-go/internal/session"
)

// startBoard returns the configured starting position.
func startBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.StartFEN == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(cfg.StartFEN)
}

// runConsole plays a game between two players typing into in, drawing the
// board and prompts on out. It returns when the game ends or in runs dry.
func runConsole(in io.Reader, out io.Writer, cfg *config.Config) (*session.Session, error) {
	board, err := startBoard(cfg)
	if err != nil {
		return nil, err
	}
	s := session.New(engine.NewGameFromBoard(board))
	scanner := bufio.NewScanner(in)

	for !s.Over() {
		game := s.Game()
		fmt.Fprintf(out, "\n%s\n", engine.Render(game.Board()))
		if s.DrawOffered() {
			fmt.Fprintf(out, "%s offers a draw.\n", game.Turn().Opposite())
		}
		fmt.Fprintf(out, "%s's move: ", game.Turn())

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ev, err := s.Handle(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		switch {
		case ev.Undone:
			fmt.Fprintln(out, "Move taken back.")
		case ev.Result == chess.Success && ev.Move != (chess.Move{}) && game.InCheck(game.Turn()):
			fmt.Fprintln(out, "Check!")
		}
	}

	if s.Over() {
		fmt.Fprintf(out, "\n%s\n", engine.Render(s.Game().Board()))
		for _, line := range s.Annotations() {
			fmt.Fprintln(out, line)
		}
	}
	return s, scanner.Err()
}

// runReplay validates the move list stored at path and writes the final
// board and status to cfg.OutputFile.
func runReplay(path string, cfg *config.Config) error {
	text, err := archive.ReadMoveListFile(path)
	if err != nil {
		return err
	}
	board, err := startBoard(cfg)
	if err != nil {
		return err
	}

	rec, err := notation.ReplayFrom(board, text)
	if err != nil {
		var gameErr *errors.GameError
		if errors.As(err, &gameErr) {
			gameErr.File = path
		}
		return err
	}

	game := rec.Game
	status := "in progress"
	if rec.Finished() {
		status = rec.Result.String()
	}
	fmt.Fprintf(cfg.OutputFile, "%s\n", engine.Render(game.Board()))
	fmt.Fprintf(cfg.OutputFile, "%s: %d plies, %s\n", path, game.Ply(), status)
	for _, line := range rec.Annotations {
		fmt.Fprintf(cfg.OutputFile, "  %s\n", line)
	}
	if cfg.Annotation.AddFEN {
		fmt.Fprintf(cfg.OutputFile, "FEN %s\n", engine.ToFEN(game.Board()))
	}
	return nil
}

// runArchive replays every game of a parquet archive and checks that each
// reaches its recorded final position.
func runArchive(path string, cfg *config.Config) (valid, invalid int, err error) {
	records, err := archive.ReadParquet(path, cfg.Output.ParquetParallel)
	if err != nil {
		return 0, 0, err
	}

	for _, record := range records {
		rec, err := record.Replay()
		switch {
		case err != nil:
			invalid++
			fmt.Fprintf(cfg.LogFile, "%s: %v\n", record.GameID, err)
		case engine.ToFEN(rec.Game.Board()) != record.FinalFEN:
			invalid++
			fmt.Fprintf(cfg.LogFile, "%s: final position %s; archive has %s\n",
				record.GameID, engine.ToFEN(rec.Game.Board()), record.FinalFEN)
		default:
			valid++
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%s: %d plies, %s\n", record.GameID, record.Plies, record.Result)
			}
		}
	}
	return valid, invalid, nil
}

// runSelfPlay plays cfg.Games random games, writes those selected by the
// filters and matcher, and archives the whole batch when a parquet path is
// set. If ctx ends early the games finished so far are still written.
func runSelfPlay(ctx context.Context, cfg *config.Config, matcher matching.GameMatcher) (selfplay.Stats, output.Counts, error) {
	games, stats, runErr := selfplay.Run(ctx, cfg, cfg.Games)
	if runErr != nil && len(games) == 0 {
		return stats, output.Counts{}, runErr
	}

	counts, err := output.OutputGames(games, cfg, matcher)
	if err != nil {
		return stats, counts, err
	}

	if cfg.Output.ParquetPath != "" {
		records := make([]archive.GameRecord, 0, len(games))
		for _, g := range games {
			records = append(records, archive.FromGame(g))
		}
		if err := archive.WriteParquet(cfg.Output.ParquetPath, records, cfg.Output.ParquetParallel); err != nil {
			return stats, counts, fmt.Errorf("writing %s: %w", cfg.Output.ParquetPath, err)
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "archived %d game(s) to %s\n", len(records), cfg.Output.ParquetPath)
		}
	}
	return stats, counts, runErr
}
