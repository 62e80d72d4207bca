package game

import (
	"errors"
	"testing"
)

func TestParseElement_KnownCodes(t *testing.T) {
	seen := make(map[rune]string)
	for e, name := range elementNames {
		got, err := ParseElement(e.Rune())
		if err != nil {
			t.Fatalf("ParseElement(%q): %v", e.Rune(), err)
		}
		if got != e || got.String() != name {
			t.Fatalf("ParseElement(%q) = %v want %s", e.Rune(), got, name)
		}
		if other, dup := seen[e.Rune()]; dup {
			t.Fatalf("%s and %s share code %q", name, other, e.Rune())
		}
		seen[e.Rune()] = name
	}
}

func TestParseElement_Unknown(t *testing.T) {
	for _, r := range []rune{'?', 'z', '0', '6', '\n', '☐'} {
		if _, err := ParseElement(r); !errors.Is(err, ErrUnknownElement) {
			t.Fatalf("ParseElement(%q): got %v want ErrUnknownElement", r, err)
		}
	}
}

func TestElementCategories(t *testing.T) {
	for _, e := range []Element{BombTimer1, BombTimer5, BombBomberman, OtherBombBomberman} {
		if !e.IsBomb() {
			t.Fatalf("%v should be a bomb", e)
		}
	}
	for _, e := range []Element{Bomberman, DeadBomberman, Boom, Wall} {
		if e.IsBomb() {
			t.Fatalf("%v should not be a bomb", e)
		}
	}
	if !DeadBomberman.IsHero() || OtherBomberman.IsHero() {
		t.Fatalf("hero classification wrong")
	}
	if !OtherDeadBomberman.IsOtherHero() || Bomberman.IsOtherHero() {
		t.Fatalf("other hero classification wrong")
	}
}
