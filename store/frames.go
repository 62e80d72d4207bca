// Package store records decoded ticks to Parquet so sessions can be replayed
// and analysed offline.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/brensch/codebomber/game"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

const frameSchema = "bomber_frame_v1"

// FrameRow is one tick of one session.
//
// Board holds the flat board string as received (line breaks removed), so a
// row can always be decoded again with game.NewBoard. The counts are derived
// at record time for quick filtering without decoding.
type FrameRow struct {
	SessionID string `parquet:"session_id,dict"`
	Tick      int64  `parquet:"tick"`
	Size      int32  `parquet:"size"`
	Board     string `parquet:"board,zstd"`

	HeroX    int32 `parquet:"hero_x"`
	HeroY    int32 `parquet:"hero_y"`
	HeroDead bool  `parquet:"hero_dead"`

	Bombs        int32 `parquet:"bombs"`
	Blasts       int32 `parquet:"blasts"`
	FutureBlasts int32 `parquet:"future_blasts"`
	OtherHeroes  int32 `parquet:"other_heroes"`
	MeatChoppers int32 `parquet:"meat_choppers"`

	Command string `parquet:"command,dict"`
}

func NewFrameRow(sessionID string, tick int64, b *game.Board, command string) FrameRow {
	hero := b.Hero()
	var flat []byte
	for _, row := range b.Rows() {
		flat = append(flat, row...)
	}
	return FrameRow{
		SessionID:    sessionID,
		Tick:         tick,
		Size:         int32(b.Size()),
		Board:        string(flat),
		HeroX:        int32(hero.X),
		HeroY:        int32(hero.Y),
		HeroDead:     b.IsHeroDead(),
		Bombs:        int32(len(b.Bombs())),
		Blasts:       int32(len(b.Blasts())),
		FutureBlasts: int32(len(b.FutureBlasts())),
		OtherHeroes:  int32(len(b.OtherHeroes())),
		MeatChoppers: int32(len(b.MeatChoppers())),
		Command:      command,
	}
}

// Decode rebuilds the board recorded in the row.
func (r FrameRow) Decode() (*game.Board, error) {
	return game.NewBoard(r.Board)
}

// WriteFramesParquetAtomic writes a Parquet file into outDir/tmp and then
// atomically moves it into outDir, so readers never observe partial files.
// The returned path is the final parquet file path.
func WriteFramesParquetAtomic(outDir string, rows []FrameRow) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmpDir := filepath.Join(outDir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	name := fmt.Sprintf("frames_%d.parquet", time.Now().UnixNano())
	finalPath := filepath.Join(outDir, name)
	tmpPath := filepath.Join(tmpDir, name+".tmp")
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", frameSchema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename parquet: %w", err)
	}

	return finalPath, nil
}

// ReadFramesParquet loads every row of a file written by WriteFramesParquetAtomic.
func ReadFramesParquet(path string) ([]FrameRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[FrameRow](pf)
	defer reader.Close()

	rows := make([]FrameRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	return rows[:n], nil
}
