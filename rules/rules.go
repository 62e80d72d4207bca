// Package rules derives moves and server commands from a decoded board.
package rules

import (
	"fmt"
	"strings"

	"github.com/brensch/codebomber/game"
)

type Move int

const (
	MoveStop Move = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// Directions lists the moves that change position.
var Directions = []Move{MoveUp, MoveDown, MoveLeft, MoveRight}

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "UP"
	case MoveDown:
		return "DOWN"
	case MoveLeft:
		return "LEFT"
	case MoveRight:
		return "RIGHT"
	default:
		return "STOP"
	}
}

// Target is where a bomberman at p ends up after m.
func (m Move) Target(p game.Point) game.Point {
	switch m {
	case MoveUp:
		return p.Up()
	case MoveDown:
		return p.Down()
	case MoveLeft:
		return p.Left()
	case MoveRight:
		return p.Right()
	default:
		return p
	}
}

// Command is one reply to the server. Act drops a bomb; ActFirst drops it
// before moving instead of after.
type Command struct {
	Move     Move
	Act      bool
	ActFirst bool
}

// String encodes the command the way the server expects: "UP", "ACT",
// "ACT,LEFT", "RIGHT,ACT" or "STOP".
func (c Command) String() string {
	switch {
	case !c.Act:
		return c.Move.String()
	case c.Move == MoveStop:
		return "ACT"
	case c.ActFirst:
		return "ACT," + c.Move.String()
	default:
		return c.Move.String() + ",ACT"
	}
}

func ParseCommand(s string) (Command, error) {
	var c Command
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), ",")
	if len(parts) > 2 {
		return Command{}, fmt.Errorf("parse command %q: too many parts", s)
	}
	moved := false
	for i, part := range parts {
		if part == "ACT" {
			if c.Act {
				return Command{}, fmt.Errorf("parse command %q: ACT repeated", s)
			}
			c.Act = true
			c.ActFirst = i == 0 && len(parts) == 2
			continue
		}
		m, ok := parseMove(part)
		if !ok || moved {
			return Command{}, fmt.Errorf("parse command %q: unexpected %q", s, part)
		}
		c.Move = m
		moved = true
	}
	return c, nil
}

func parseMove(s string) (Move, bool) {
	switch s {
	case "UP":
		return MoveUp, true
	case "DOWN":
		return MoveDown, true
	case "LEFT":
		return MoveLeft, true
	case "RIGHT":
		return MoveRight, true
	case "STOP", "":
		return MoveStop, true
	}
	return MoveStop, false
}

// LegalMoves returns the directions the hero can walk this tick: the target
// must be on the board and not a barrier. A dead hero has none.
func LegalMoves(b *game.Board) []Move {
	if b.IsHeroDead() {
		return []Move{}
	}
	hero := b.Hero()
	moves := []Move{}
	for _, m := range Directions {
		t := m.Target(hero)
		if t.IsOutOf(b.Size()) || b.IsBarrierAt(t) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// SafeMoves filters LegalMoves, plus standing still, down to targets that are
// neither burning now nor inside FutureBlasts.
func SafeMoves(b *game.Board) []Move {
	if b.IsHeroDead() {
		return []Move{}
	}
	danger := make(map[game.Point]struct{})
	for _, p := range b.FutureBlasts() {
		danger[p] = struct{}{}
	}
	for _, p := range b.Blasts() {
		danger[p] = struct{}{}
	}

	hero := b.Hero()
	moves := []Move{}
	for _, m := range append([]Move{MoveStop}, LegalMoves(b)...) {
		if _, bad := danger[m.Target(hero)]; bad {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}
