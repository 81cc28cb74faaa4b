// Package archive stores finished games in parquet files and reads move
// lists from disk.
package archive

import (
	"fmt"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lgbarn/chess48-go/internal/chess"
	"github.com/lgbarn/chess48-go/internal/engine"
	"github.com/lgbarn/chess48-go/internal/notation"
	"github.com/lgbarn/chess48-go/internal/selfplay"
)

// GameRecord is one archived game. Moves holds the newline-delimited move
// list without annotations.
type GameRecord struct {
	GameID    string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Seed      int64  `parquet:"name=seed, type=INT64"`
	Plies     int32  `parquet:"name=plies, type=INT32"`
	Result    string `parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8"`
	Winner    string `parquet:"name=winner, type=BYTE_ARRAY, convertedtype=UTF8"`
	Reason    string `parquet:"name=reason, type=BYTE_ARRAY, convertedtype=UTF8"`
	Duplicate bool   `parquet:"name=duplicate, type=BOOLEAN"`
	StartFEN  string `parquet:"name=start_fen, type=BYTE_ARRAY, convertedtype=UTF8"`
	Moves     string `parquet:"name=moves, type=BYTE_ARRAY, convertedtype=UTF8"`
	FinalFEN  string `parquet:"name=final_fen, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Result strings.
const (
	WhiteWon = "1-0"
	BlackWon = "0-1"
	Drawn    = "1/2-1/2"
	Unended  = "*"
)

// FromGame converts a self-play game to its archive record.
func FromGame(g *selfplay.Game) GameRecord {
	rec := GameRecord{
		GameID:    fmt.Sprintf("game-%d", g.Index+1),
		Seed:      g.Seed,
		Plies:     int32(g.Plies()),
		Result:    Unended,
		Reason:    g.Reason(),
		Duplicate: g.Duplicate,
		StartFEN:  engine.ToFEN(g.Start),
		Moves:     notation.Export(g.Moves),
		FinalFEN:  engine.ToFEN(g.Final),
	}
	if winner, ok := g.Winner(); ok {
		rec.Winner = winner.String()
		rec.Result = WhiteWon
		if winner == chess.Black {
			rec.Result = BlackWon
		}
	} else if g.Reason() == selfplay.ReasonStalemate {
		rec.Result = Drawn
	}
	return rec
}

// Replay rebuilds the record's game through the full rules.
func (r GameRecord) Replay() (*notation.Record, error) {
	board, err := engine.NewBoardFromFEN(r.StartFEN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.GameID, err)
	}
	return notation.ReplayFrom(board, r.Moves)
}

// WriteParquet writes records to path with snappy compression using
// parallel writer goroutines.
func WriteParquet(path string, records []GameRecord, parallel int64) (err error) {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := fileWriter.Close(); err == nil {
			err = closeErr
		}
	}()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(GameRecord), parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return err
		}
	}
	return parquetWriter.WriteStop()
}

// ReadParquet reads every record from path.
func ReadParquet(path string, parallel int64) ([]GameRecord, error) {
	absPath := path
	if !filepath.IsAbs(path) {
		if resolved, err := filepath.Abs(path); err == nil {
			absPath = resolved
		}
	}
	fileReader, err := local.NewLocalFileReader(absPath)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(GameRecord), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	num := int(parquetReader.GetNumRows())
	records := make([]GameRecord, 0, num)
	batchSize := 1024
	for offset := 0; offset < num; offset += batchSize {
		if remain := num - offset; remain < batchSize {
			batchSize = remain
		}
		batch := make([]GameRecord, batchSize)
		if err := parquetReader.Read(&batch); err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
	return records, nil
}
