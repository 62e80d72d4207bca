// Package main runs a Bomberman bot against a Codenjoy server.
//
// Each tick the board is decoded, a cautious move is chosen from the safe
// moves, and optionally every decoded frame is recorded to Parquet batches
// for later replay.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brensch/codebomber/client"
	"github.com/brensch/codebomber/game"
	"github.com/brensch/codebomber/logging"
	"github.com/brensch/codebomber/rules"
	"github.com/brensch/codebomber/store"
)

func main() {
	defaults := client.DefaultConfig()

	url := flag.String("url", getEnvOrDefault("CODENJOY_URL", defaults.URL), "Websocket URL including user and code parameters")
	outDir := flag.String("out-dir", getEnvOrDefault("OUT_DIR", ""), "Directory for recorded frame batches (empty disables recording)")
	flushFrames := flag.Int("flush-frames", getEnvIntOrDefault("FLUSH_FRAMES", 500), "Flush recorded frames when this many are buffered")
	readTimeout := flag.Duration("read-timeout", getEnvDurationOrDefault("READ_TIMEOUT", defaults.ReadTimeout), "Maximum wait for the next tick")
	logJSON := flag.Bool("log-json", getEnvBoolOrDefault("LOG_JSON", false), "Log JSON objects instead of text")
	logIndent := flag.Bool("log-indent", getEnvBoolOrDefault("LOG_INDENT", false), "Indent JSON log objects")
	flag.Parse()

	logger := slog.Default()
	if *logJSON {
		logger = slog.New(logging.NewPrettyJSONHandler(os.Stderr, &logging.Options{Indent: *logIndent}))
	}

	cfg := defaults
	cfg.URL = *url
	cfg.ReadTimeout = *readTimeout

	sessionID := fmt.Sprintf("%d", time.Now().UnixNano())
	logger = logger.With("session", sessionID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(cfg, client.SolverFunc(solve))

	rec := &recorder{outDir: *outDir, flushFrames: *flushFrames, logger: logger}
	c.OnFrame = func(f client.Frame) {
		if f.Board.IsHeroDead() {
			logger.Info("hero dead", "tick", f.Tick, "at", f.Board.Hero())
		}
		logger.Debug("tick", "tick", f.Tick, "hero", f.Board.Hero(), "command", f.Command.String())
		rec.add(store.NewFrameRow(sessionID, f.Tick, f.Board, f.Command.String()))
	}

	logger.Info("connecting", "url", cfg.URL, "recording", *outDir != "")
	err := c.Run(ctx)
	rec.flush("final")

	stats := c.GetStats()
	logger.Info("session finished",
		"frames", stats.Frames,
		"decode_failures", stats.DecodeFailures,
		"commands", stats.Commands,
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session failed", "err", err)
		os.Exit(1)
	}
}

// solve walks to the first safe neighbouring cell and drops a bomb first when
// a destroyable wall is adjacent and there is somewhere to run to.
func solve(b *game.Board) rules.Command {
	safe := rules.SafeMoves(b)
	move := rules.MoveStop
	for _, m := range safe {
		if m != rules.MoveStop {
			move = m
			break
		}
	}
	act := move != rules.MoveStop && b.IsNear(b.Hero(), game.DestroyableWall)
	return rules.Command{Move: move, Act: act, ActFirst: act}
}

type recorder struct {
	outDir      string
	flushFrames int
	logger      *slog.Logger
	rows        []store.FrameRow
}

func (r *recorder) add(row store.FrameRow) {
	if r.outDir == "" {
		return
	}
	r.rows = append(r.rows, row)
	if len(r.rows) >= r.flushFrames {
		r.flush("count")
	}
}

func (r *recorder) flush(reason string) {
	if len(r.rows) == 0 {
		return
	}
	path, err := store.WriteFramesParquetAtomic(r.outDir, r.rows)
	if err != nil {
		r.logger.Error("flush failed", "reason", reason, "err", err)
		return
	}
	r.logger.Info("flushed frames", "reason", reason, "rows", len(r.rows), "path", path)
	r.rows = r.rows[:0]
}

// Environment variable helpers
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var i int
		if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
