package game

// Mapper converts between offsets into the flattened board buffer and
// coordinates on a board with a fixed edge length. It does no bounds checks.
type Mapper struct {
	size int
}

func NewMapper(size int) Mapper {
	return Mapper{size: size}
}

func (m Mapper) Size() int { return m.size }

// Offset returns the buffer index of (x, y).
func (m Mapper) Offset(x, y int) int {
	return y*m.size + x
}

// Point returns the coordinate stored at buffer index offset.
func (m Mapper) Point(offset int) Point {
	return Point{X: offset % m.size, Y: offset / m.size}
}
