package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess48-go/internal/archive"
	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/config"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/notation"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

// JSONGame represents a finished game in JSON format.
type JSONGame struct {
	Game       int        `json:"game"`
	Seed       int64      `json:"seed"`
	Result     string     `json:"result"`
	Winner     string     `json:"winner,omitempty"`
	Reason     string     `json:"reason"`
	PlyCount   int        `json:"plyCount"`
	Duplicate  bool       `json:"duplicate,omitempty"`
	InitialFEN string     `json:"initialFen"`
	FinalFEN   string     `json:"finalFen"`
	Moves      []JSONMove `json:"moves"`
}

// JSONMove represents a single move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece,omitempty"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Text      string `json:"text"`
	FEN       string `json:"fen,omitempty"`
}

// JSONOutput represents the complete JSON output with multiple games.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON writes games as a single JSON document.
func OutputGamesJSON(games []*selfplay.Game, cfg *config.Config, w io.Writer) error {
	output := &JSONOutput{Games: make([]*JSONGame, 0, len(games))}
	for _, g := range games {
		output.Games = append(output.Games, GameToJSON(g, cfg))
	}
	return encodeJSON(w, output)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToJSON converts a game to its JSON representation. Per-move FENs are
// included when the FEN annotation is enabled.
func GameToJSON(g *selfplay.Game, cfg *config.Config) *JSONGame {
	rec := archive.FromGame(g)
	return &JSONGame{
		Game:       g.Index + 1,
		Seed:       g.Seed,
		Result:     rec.Result,
		Winner:     rec.Winner,
		Reason:     rec.Reason,
		PlyCount:   g.Plies(),
		Duplicate:  g.Duplicate,
		InitialFEN: rec.StartFEN,
		FinalFEN:   rec.FinalFEN,
		Moves:      convertMoveList(g, cfg.Annotation != nil && cfg.Annotation.AddFEN),
	}
}

// convertMoveList replays the moves from the start position so each one
// can report the piece it moved and what it took.
func convertMoveList(g *selfplay.Game, includeFEN bool) []JSONMove {
	moves := make([]JSONMove, 0, len(g.Moves))
	game := engine.NewGameFromBoard(g.Start)
	for i, m := range g.Moves {
		before := game.Board()
		if !game.Play(m).Applied() {
			break
		}
		jm := convertSingleMove(m, before, i+1)
		if includeFEN {
			jm.FEN = engine.ToFEN(game.Board())
		}
		moves = append(moves, jm)
	}
	return moves
}

func convertSingleMove(m chess.Move, before *chess.Board, ply int) JSONMove {
	jm := JSONMove{
		Ply:   ply,
		Color: colorName(before.ToMove),
		From:  m.From.String(),
		To:    m.To.String(),
		Text:  notation.FormatMove(m),
	}
	if p := before.Get(m.From); p != nil {
		jm.Piece = pieceTypeName(p.Kind)
	}
	jm.Captured = getCapturedPiece(m, before)
	if m.Promotion != chess.NoPiece {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	return jm
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// getCapturedPiece names the piece taken by m, including a pawn taken en
// passant.
func getCapturedPiece(m chess.Move, before *chess.Board) string {
	if p := before.Get(m.To); p != nil {
		return pieceTypeName(p.Kind)
	}
	mover := before.Get(m.From)
	if mover == nil || mover.Kind != chess.Pawn || m.From.Col == m.To.Col {
		return ""
	}
	if p := before.Get(chess.Sq(m.From.Row, m.To.Col)); p != nil && p.Kind == chess.Pawn {
		return pieceTypeName(chess.Pawn)
	}
	return ""
}

func pieceTypeName(k chess.PieceKind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
