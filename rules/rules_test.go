package rules

import (
	"reflect"
	"testing"

	"github.com/brensch/codebomber/game"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{}, "STOP"},
		{Command{Move: MoveUp}, "UP"},
		{Command{Act: true}, "ACT"},
		{Command{Move: MoveLeft, Act: true, ActFirst: true}, "ACT,LEFT"},
		{Command{Move: MoveRight, Act: true}, "RIGHT,ACT"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("%+v: got %q want %q", tt.cmd, got, tt.want)
		}
		back, err := ParseCommand(tt.want)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", tt.want, err)
		}
		if back != tt.cmd {
			t.Errorf("ParseCommand(%q): got %+v want %+v", tt.want, back, tt.cmd)
		}
	}
}

func TestParseCommand_Rejects(t *testing.T) {
	for _, s := range []string{"JUMP", "UP,DOWN", "ACT,ACT", "UP,ACT,DOWN"} {
		if _, err := ParseCommand(s); err == nil {
			t.Errorf("ParseCommand(%q): expected error", s)
		}
	}
	if c, err := ParseCommand(" act,up "); err != nil || c != (Command{Move: MoveUp, Act: true, ActFirst: true}) {
		t.Errorf("ParseCommand should be case and space tolerant, got %+v %v", c, err)
	}
}

func TestMove_Target(t *testing.T) {
	p := game.Point{X: 1, Y: 1}
	want := map[Move]game.Point{
		MoveStop:  {X: 1, Y: 1},
		MoveUp:    {X: 1, Y: 0},
		MoveDown:  {X: 1, Y: 2},
		MoveLeft:  {X: 0, Y: 1},
		MoveRight: {X: 2, Y: 1},
	}
	for m, w := range want {
		if got := m.Target(p); got != w {
			t.Errorf("%v.Target(%v): got %v want %v", m, p, got, w)
		}
	}
}

func TestLegalMoves(t *testing.T) {
	b := game.MustBoard("" +
		" # " +
		"♥☺ " +
		" ☼ ")
	got := LegalMoves(b)
	if want := []Move{MoveRight}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LegalMoves: got %v want %v", got, want)
	}
}

func TestLegalMoves_EdgeAndDead(t *testing.T) {
	b := game.MustBoard("☺  \n   \n   ")
	if got, want := LegalMoves(b), []Move{MoveDown, MoveRight}; !reflect.DeepEqual(got, want) {
		t.Fatalf("LegalMoves at corner: got %v want %v", got, want)
	}
	dead := game.MustBoard("Ѡ  \n   \n   ")
	if got := LegalMoves(dead); len(got) != 0 {
		t.Fatalf("dead hero should have no moves, got %v", got)
	}
	if got := SafeMoves(dead); len(got) != 0 {
		t.Fatalf("dead hero should have no safe moves, got %v", got)
	}
}

func TestSafeMoves_AvoidsFutureBlasts(t *testing.T) {
	// Bomb at [2,1] threatens [1,1] (the hero) and [2,0], [2,2]. Blast at [0,2].
	b := game.MustBoard("" +
		"    " +
		" ☺3 " +
		"҉   " +
		"    ")
	got := SafeMoves(b)
	want := []Move{MoveUp, MoveDown, MoveLeft}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SafeMoves: got %v want %v", got, want)
	}
}
