// Package main prints the decoded view of a single board snapshot.
//
// The board is read from -file, or stdin when no file is given. A leading
// "board=" prefix, as sent by the server, is accepted.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/brensch/codebomber/game"
	"github.com/brensch/codebomber/rules"
)

func main() {
	path := flag.String("file", "", "File holding the board string (default stdin)")
	flag.Parse()

	var (
		data []byte
		err  error
	)
	if *path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*path)
	}
	if err != nil {
		log.Fatalf("Failed to read board: %v", err)
	}

	raw := strings.TrimPrefix(string(data), "board=")
	b, err := game.NewBoard(raw)
	if err != nil {
		log.Fatalf("Failed to decode board: %v", err)
	}

	fmt.Println(b.String())
	fmt.Println()
	fmt.Printf("Legal moves: %v\n", rules.LegalMoves(b))
	fmt.Printf("Safe moves:  %v\n", rules.SafeMoves(b))
}
