package game

import (
	"errors"
	"fmt"
	"slices"
)

// Element is the content of one board cell, keyed by its wire rune.
type Element rune

const (
	None Element = ' '

	Wall            Element = '☼'
	DestroyableWall Element = '#'
	DestroyedWall   Element = 'H'

	Bomberman     Element = '☺'
	BombBomberman Element = '☻'
	DeadBomberman Element = 'Ѡ'

	OtherBomberman     Element = '♥'
	OtherBombBomberman Element = '♠'
	OtherDeadBomberman Element = '♣'

	MeatChopper     Element = '&'
	DeadMeatChopper Element = 'x'

	BombTimer1 Element = '1'
	BombTimer2 Element = '2'
	BombTimer3 Element = '3'
	BombTimer4 Element = '4'
	BombTimer5 Element = '5'

	Boom Element = '҉'
)

var ErrUnknownElement = errors.New("unknown element")

var elementNames = map[Element]string{
	None:               "NONE",
	Wall:               "WALL",
	DestroyableWall:    "DESTROYABLE_WALL",
	DestroyedWall:      "DESTROYED_WALL",
	Bomberman:          "BOMBERMAN",
	BombBomberman:      "BOMB_BOMBERMAN",
	DeadBomberman:      "DEAD_BOMBERMAN",
	OtherBomberman:     "OTHER_BOMBERMAN",
	OtherBombBomberman: "OTHER_BOMB_BOMBERMAN",
	OtherDeadBomberman: "OTHER_DEAD_BOMBERMAN",
	MeatChopper:        "MEAT_CHOPPER",
	DeadMeatChopper:    "DEAD_MEAT_CHOPPER",
	BombTimer1:         "BOMB_TIMER_1",
	BombTimer2:         "BOMB_TIMER_2",
	BombTimer3:         "BOMB_TIMER_3",
	BombTimer4:         "BOMB_TIMER_4",
	BombTimer5:         "BOMB_TIMER_5",
	Boom:               "BOOM",
}

// Groups of elements the board queries collapse into one category.
var (
	HeroElements      = []Element{Bomberman, BombBomberman, DeadBomberman}
	OtherHeroElements = []Element{OtherBomberman, OtherBombBomberman, OtherDeadBomberman}
	BombElements      = []Element{BombTimer1, BombTimer2, BombTimer3, BombTimer4, BombTimer5, BombBomberman, OtherBombBomberman}
)

// ParseElement maps a wire rune to its Element.
func ParseElement(r rune) (Element, error) {
	e := Element(r)
	if _, ok := elementNames[e]; !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownElement, r)
	}
	return e, nil
}

// Rune returns the wire code.
func (e Element) Rune() rune { return rune(e) }

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Element(%q)", rune(e))
}

// IsBomb reports whether the cell holds a live bomb, whoever planted it.
func (e Element) IsBomb() bool {
	return slices.Contains(BombElements, e)
}

func (e Element) IsHero() bool {
	return slices.Contains(HeroElements, e)
}

func (e Element) IsOtherHero() bool {
	return slices.Contains(OtherHeroElements, e)
}
