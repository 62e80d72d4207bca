package game

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	ErrNotSquare = errors.New("board length is not a perfect square")
	ErrHeroCount = errors.New("board must hold exactly one bomberman")
)

var barrierElements = []Element{
	MeatChopper,
	Wall,
	BombTimer1, BombTimer2, BombTimer3, BombTimer4, BombTimer5,
	BombBomberman, OtherBombBomberman,
	DestroyableWall,
	OtherBomberman, OtherDeadBomberman,
}

var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// Board is one decoded tick. It is never modified after NewBoard returns, so
// it can be read from several goroutines without locking.
//
// Every multi-cell query rescans the whole grid. Boards live for a single tick
// and are queried a handful of times, so nothing is cached.
type Board struct {
	cells  []Element
	size   int
	mapper Mapper
	hero   Point
}

// NewBoard decodes a raw board string. Line breaks are dropped before
// indexing, so callers may pass either one flat line or newline-joined rows.
func NewBoard(raw string) (*Board, error) {
	flat := []rune(lineBreaks.Replace(raw))

	cells := make([]Element, len(flat))
	for i, r := range flat {
		e, err := ParseElement(r)
		if err != nil {
			return nil, fmt.Errorf("decode cell %d: %w", i, err)
		}
		cells[i] = e
	}

	size := isqrt(len(cells))
	if size*size != len(cells) {
		return nil, fmt.Errorf("%w: %d cells", ErrNotSquare, len(cells))
	}

	b := &Board{
		cells:  cells,
		size:   size,
		mapper: NewMapper(size),
	}

	heroes := b.findAny(HeroElements)
	if len(heroes) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrHeroCount, len(heroes))
	}
	b.hero = heroes[0]

	return b, nil
}

// MustBoard is NewBoard for fixtures; it panics on malformed input.
func MustBoard(raw string) *Board {
	b, err := NewBoard(raw)
	if err != nil {
		panic(err)
	}
	return b
}

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Size is the edge length; the board has Size*Size cells.
func (b *Board) Size() int { return b.size }

// ElementAt returns the cell content at p. Points off the board read as Wall,
// so the board behaves as if fenced by an endless wall.
func (b *Board) ElementAt(p Point) Element {
	if p.IsOutOf(b.size) {
		return Wall
	}
	return b.cells[b.mapper.Offset(p.X, p.Y)]
}

// IsAt reports whether p is on the board and holds e.
func (b *Board) IsAt(p Point, e Element) bool {
	if p.IsOutOf(b.size) {
		return false
	}
	return b.ElementAt(p) == e
}

// IsAtAny reports whether ElementAt(p) is one of elements. Unlike IsAt there
// is no bounds short-circuit: an off-board point matches a set holding Wall.
func (b *Board) IsAtAny(p Point, elements []Element) bool {
	return slices.Contains(elements, b.ElementAt(p))
}

// IsAnyOfAt reports whether IsAt(p, e) holds for any of elements.
func (b *Board) IsAnyOfAt(p Point, elements ...Element) bool {
	for _, e := range elements {
		if b.IsAt(p, e) {
			return true
		}
	}
	return false
}

// FindAll returns every cell holding e in row-major order.
func (b *Board) FindAll(e Element) []Point {
	var out []Point
	for i, c := range b.cells {
		if c == e {
			out = append(out, b.mapper.Point(i))
		}
	}
	return out
}

func (b *Board) findAny(elements []Element) []Point {
	var out []Point
	for i, c := range b.cells {
		if slices.Contains(elements, c) {
			out = append(out, b.mapper.Point(i))
		}
	}
	return out
}

// Hero is the position of our bomberman, alive, on a bomb or dead.
func (b *Board) Hero() Point { return b.hero }

func (b *Board) OtherHeroes() []Point { return b.findAny(OtherHeroElements) }

func (b *Board) IsHeroDead() bool {
	return b.ElementAt(b.hero) == DeadBomberman
}

func (b *Board) MeatChoppers() []Point     { return b.FindAll(MeatChopper) }
func (b *Board) Walls() []Point            { return b.FindAll(Wall) }
func (b *Board) DestroyableWalls() []Point { return b.FindAll(DestroyableWall) }
func (b *Board) Blasts() []Point           { return b.FindAll(Boom) }

// Bombs returns every cell holding a live bomb: all timer states plus
// bombermen standing on the bomb they just planted.
func (b *Board) Bombs() []Point { return b.findAny(BombElements) }

// Barriers returns the cells a bomberman cannot walk through.
func (b *Board) Barriers() []Point { return b.findAny(barrierElements) }

// IsBarrierAt reports whether p is one of Barriers. Off-board points are not.
func (b *Board) IsBarrierAt(p Point) bool {
	if p.IsOutOf(b.size) {
		return false
	}
	return slices.Contains(barrierElements, b.ElementAt(p))
}

// FutureBlasts predicts the cells hit if every live bomb went off now: each
// bomb cell and its four neighbours, minus off-board and Wall cells. Chain
// reactions and blast radius beyond one cell are not modelled.
func (b *Board) FutureBlasts() []Point {
	seen := make(map[Point]struct{})
	var out []Point
	for _, bomb := range b.Bombs() {
		n := bomb.Neighbors()
		for _, p := range []Point{bomb, n[0], n[1], n[2], n[3]} {
			if p.IsOutOf(b.size) || b.IsAt(p, Wall) {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, c Point) int {
		return b.mapper.Offset(a.X, a.Y) - b.mapper.Offset(c.X, c.Y)
	})
	return out
}

// IsNear reports whether any of the four neighbours of p holds e. p itself is
// not checked.
func (b *Board) IsNear(p Point, e Element) bool {
	return b.CountNear(p, e) > 0
}

// CountNear counts the neighbours of p holding e; 0 when p is off the board.
func (b *Board) CountNear(p Point, e Element) int {
	if p.IsOutOf(b.size) {
		return 0
	}
	count := 0
	for _, n := range p.Neighbors() {
		if b.IsAt(n, e) {
			count++
		}
	}
	return count
}

// Rows returns the board one string per row, top to bottom.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		sb.Reset()
		for _, c := range b.cells[y*b.size : (y+1)*b.size] {
			sb.WriteRune(c.Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}

// BoardAsString renders the rows, each terminated by a newline.
func (b *Board) BoardAsString() string {
	var sb strings.Builder
	for _, row := range b.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String is a debugging summary: the board followed by every derived query.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.BoardAsString())
	fmt.Fprintf(&sb, "\nBomberman at: %s\n", b.hero)
	fmt.Fprintf(&sb, "Other bombermans at: %s\n", joinPoints(b.OtherHeroes()))
	fmt.Fprintf(&sb, "Meat choppers at: %s\n", joinPoints(b.MeatChoppers()))
	fmt.Fprintf(&sb, "Destroy walls at: %s\n", joinPoints(b.DestroyableWalls()))
	fmt.Fprintf(&sb, "Bombs at: %s\n", joinPoints(b.Bombs()))
	fmt.Fprintf(&sb, "Blasts: %s\n", joinPoints(b.Blasts()))
	fmt.Fprintf(&sb, "Expected blasts at: %s", joinPoints(b.FutureBlasts()))
	return sb.String()
}

func joinPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}
