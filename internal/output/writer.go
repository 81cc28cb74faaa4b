// Package output writes finished self-play games in the supported formats.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess48-go/internal/config"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *selfplay.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriterSingle(w, cfg)
	case config.FEN:
		return NewFENWriter(w)
	default:
		return NewMoveListWriter(w, cfg)
	}
}

// MoveListWriter writes each game as its move list and annotation lines,
// followed by a blank line. The text replays with notation.ReplayFrom.
type MoveListWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewMoveListWriter creates a new move list writer.
func NewMoveListWriter(w io.Writer, cfg *config.Config) *MoveListWriter {
	return &MoveListWriter{w: w, cfg: cfg}
}

// WriteGame writes a game in move list format.
func (mw *MoveListWriter) WriteGame(game *selfplay.Game) error {
	if _, err := io.WriteString(mw.w, game.MoveList(mw.cfg.Annotation)); err != nil {
		return err
	}
	if mw.cfg.Output.ShowBoard {
		if _, err := fmt.Fprintf(mw.w, "\n%s\n", engine.Render(game.Final)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(mw.w)
	return err
}

// Flush is a no-op; games are written immediately.
func (mw *MoveListWriter) Flush() error {
	return nil
}

// Close closes the move list writer.
func (mw *MoveListWriter) Close() error {
	return nil
}

// FENWriter writes the final position of each game on its own line.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteGame writes the game's final position.
func (fw *FENWriter) WriteGame(game *selfplay.Game) error {
	_, err := fmt.Fprintln(fw.w, engine.ToFEN(game.Final))
	return err
}

// Flush is a no-op for FEN output.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*selfplay.Game
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*selfplay.Game, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *selfplay.Game) error {
	if jw.single {
		return encodeJSON(jw.w, GameToJSON(game, jw.cfg))
	}
	jw.games = append(jw.games, game)
	return nil
}

// Flush writes all buffered games as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.games, jw.cfg, jw.w)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
