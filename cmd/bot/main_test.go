package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/brensch/codebomber/game"
	"github.com/brensch/codebomber/rules"
	"github.com/brensch/codebomber/store"
)

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  rules.Command
	}{
		{
			name:  "walks to first safe cell",
			board: "☼☼☼\n☼☺ \n☼☼☼",
			want:  rules.Command{Move: rules.MoveRight},
		},
		{
			name:  "bombs a wall before leaving",
			board: "☼#☼\n☼☺ \n☼  ",
			want:  rules.Command{Move: rules.MoveDown, Act: true, ActFirst: true},
		},
		{
			name:  "boxed in stays put",
			board: "☼☼☼\n☼☺☼\n☼☼☼",
			want:  rules.Command{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := solve(game.MustBoard(tt.board)); got != tt.want {
				t.Fatalf("got %+v (%s) want %+v", got, got, tt.want)
			}
		})
	}
}

func TestRecorder_FlushesOnCount(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{
		outDir:      dir,
		flushFrames: 2,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	b := game.MustBoard("☺   ")
	for tick := int64(1); tick <= 3; tick++ {
		rec.add(store.NewFrameRow("s", tick, b, "STOP"))
	}
	if len(rec.rows) != 1 {
		t.Fatalf("buffered rows: got %d want 1", len(rec.rows))
	}
	rec.flush("final")

	files, err := filepath.Glob(filepath.Join(dir, "*.parquet"))
	if err != nil || len(files) != 2 {
		t.Fatalf("parquet files: %v %v", files, err)
	}
}

func TestRecorder_DisabledWithoutOutDir(t *testing.T) {
	rec := &recorder{flushFrames: 1, logger: slog.Default()}
	rec.add(store.NewFrameRow("s", 1, game.MustBoard("☺   "), "STOP"))
	if len(rec.rows) != 0 {
		t.Fatalf("recording should be disabled")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("BOT_TEST_INT", "42")
	t.Setenv("BOT_TEST_BOOL", "yes")
	t.Setenv("BOT_TEST_DUR", "bogus")
	os.Unsetenv("BOT_TEST_MISSING")

	if got := getEnvIntOrDefault("BOT_TEST_INT", 1); got != 42 {
		t.Fatalf("int: got %d", got)
	}
	if !getEnvBoolOrDefault("BOT_TEST_BOOL", false) {
		t.Fatalf("bool: expected true")
	}
	if got := getEnvDurationOrDefault("BOT_TEST_DUR", 7); got != 7 {
		t.Fatalf("duration fallback: got %v", got)
	}
	if got := getEnvOrDefault("BOT_TEST_MISSING", "x"); got != "x" {
		t.Fatalf("string fallback: got %q", got)
	}
}
