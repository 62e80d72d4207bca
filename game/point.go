// Package game decodes Codenjoy Bomberman boards and answers spatial queries
// about them.
//
// A board arrives as a flat string of single-rune cell codes laid out row by
// row. Coordinates are zero-based with (0,0) at the top-left corner and y
// growing downward, matching the order rows are serialized on the wire.
package game

import "fmt"

// Point is a board coordinate. Points are plain values: == compares them and
// they can be used as map keys.
type Point struct {
	X int
	Y int
}

func (p Point) Left() Point  { return Point{X: p.X - 1, Y: p.Y} }
func (p Point) Right() Point { return Point{X: p.X + 1, Y: p.Y} }
func (p Point) Up() Point    { return Point{X: p.X, Y: p.Y - 1} }
func (p Point) Down() Point  { return Point{X: p.X, Y: p.Y + 1} }

// Neighbors returns the four unit-adjacent points in left, right, up, down order.
func (p Point) Neighbors() [4]Point {
	return [4]Point{p.Left(), p.Right(), p.Up(), p.Down()}
}

// IsOutOf reports whether p lies outside a size x size board.
func (p Point) IsOutOf(size int) bool {
	return p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size
}

func (p Point) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}
