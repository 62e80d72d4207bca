package game

import "testing"

func TestMapper_RoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 3, 15, 23} {
		m := NewMapper(size)
		for i := 0; i < size*size; i++ {
			p := m.Point(i)
			if p.IsOutOf(size) {
				t.Fatalf("size %d: offset %d mapped off the board to %v", size, i, p)
			}
			if got := m.Offset(p.X, p.Y); got != i {
				t.Fatalf("size %d: Offset(Point(%d)) = %d", size, i, got)
			}
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				p := Point{X: x, Y: y}
				if got := m.Point(m.Offset(x, y)); got != p {
					t.Fatalf("size %d: Point(Offset(%v)) = %v", size, p, got)
				}
			}
		}
	}
}

func TestMapper_RowMajor(t *testing.T) {
	m := NewMapper(4)
	if got := m.Offset(3, 0); got != 3 {
		t.Fatalf("Offset(3,0): got %d want 3", got)
	}
	if got := m.Offset(0, 1); got != 4 {
		t.Fatalf("Offset(0,1): got %d want 4", got)
	}
	if got := m.Point(6); got != (Point{X: 2, Y: 1}) {
		t.Fatalf("Point(6): got %v want [2,1]", got)
	}
}

func TestPoint_Shifts(t *testing.T) {
	p := Point{X: 2, Y: 2}
	if p.Left() != (Point{1, 2}) || p.Right() != (Point{3, 2}) || p.Up() != (Point{2, 1}) || p.Down() != (Point{2, 3}) {
		t.Fatalf("unexpected shifts from %v", p)
	}
	if p.Left().Right() != p || p.Up().Down() != p {
		t.Fatalf("shifts should cancel out")
	}
	if !(Point{X: 0, Y: 3}).IsOutOf(3) || (Point{X: 2, Y: 2}).IsOutOf(3) || !(Point{X: -1, Y: 0}).IsOutOf(3) {
		t.Fatalf("IsOutOf boundaries wrong")
	}
}
