// Package client plays a Codenjoy Bomberman session over websocket.
//
// The server pushes one "board=..." text frame per tick and expects exactly
// one command frame back. Decoding is delegated to game.NewBoard; choosing the
// command is delegated to a Solver.
package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/brensch/codebomber/game"
	"github.com/brensch/codebomber/rules"
	"github.com/gorilla/websocket"
)

const boardPrefix = "board="

// Config holds client configuration
type Config struct {
	// URL is the full websocket endpoint, including the user and code query
	// parameters issued by the server.
	URL              string
	HandshakeTimeout time.Duration
	// ReadTimeout bounds the wait for the next tick.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		URL:              "ws://localhost:8080/codenjoy-contest/ws",
		HandshakeTimeout: 10 * time.Second,
		ReadTimeout:      30 * time.Second,
		WriteTimeout:     5 * time.Second,
	}
}

// Solver picks the command for one tick.
type Solver interface {
	Solve(b *game.Board) rules.Command
}

type SolverFunc func(b *game.Board) rules.Command

func (f SolverFunc) Solve(b *game.Board) rules.Command { return f(b) }

// Frame is what OnFrame observes for every successfully decoded tick.
type Frame struct {
	Tick    int64
	Raw     string
	Board   *game.Board
	Command rules.Command
}

// Stats holds session counters
type Stats struct {
	Frames         int64
	DecodeFailures int64
	Commands       int64
}

type Client struct {
	config Config
	solver Solver
	stats  Stats

	// OnFrame, if set, is called after each command is sent.
	OnFrame func(Frame)
}

func New(config Config, solver Solver) *Client {
	return &Client{
		config: config,
		solver: solver,
	}
}

// Run connects and plays until the server closes the socket or ctx is done.
// A normal close or cancellation returns nil.
func (c *Client) Run(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: c.config.HandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, c.config.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	// Unblock ReadMessage on cancellation.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()

	var tick int64
	for {
		if c.config.ReadTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}

		tick++
		atomic.AddInt64(&c.stats.Frames, 1)

		raw := strings.TrimPrefix(string(message), boardPrefix)
		board, err := game.NewBoard(raw)
		if err != nil {
			atomic.AddInt64(&c.stats.DecodeFailures, 1)
			log.Printf("Tick %d: skipping undecodable board: %v", tick, err)
			continue
		}

		cmd := c.solver.Solve(board)
		if c.config.WriteTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(cmd.String())); err != nil {
			if ctx.Err() != nil || errors.Is(err, websocket.ErrCloseSent) {
				return nil
			}
			return fmt.Errorf("write error: %w", err)
		}
		atomic.AddInt64(&c.stats.Commands, 1)

		if c.OnFrame != nil {
			c.OnFrame(Frame{Tick: tick, Raw: raw, Board: board, Command: cmd})
		}
	}
}

// GetStats returns current statistics
func (c *Client) GetStats() Stats {
	return Stats{
		Frames:         atomic.LoadInt64(&c.stats.Frames),
		DecodeFailures: atomic.LoadInt64(&c.stats.DecodeFailures),
		Commands:       atomic.LoadInt64(&c.stats.Commands),
	}
}
