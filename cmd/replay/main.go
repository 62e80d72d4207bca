// Package main replays a recorded Parquet frame batch in the terminal.
package main

import (
	"flag"
	"log"

	"github.com/brensch/codebomber/replay"
	"github.com/brensch/codebomber/store"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	path := flag.String("file", "", "Parquet frame batch to replay")
	flag.Parse()

	if *path == "" {
		log.Fatalf("-file is required")
	}

	frames, err := store.ReadFramesParquet(*path)
	if err != nil {
		log.Fatalf("Failed to load frames: %v", err)
	}

	p := tea.NewProgram(replay.New(frames))
	if _, err := p.Run(); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
}
