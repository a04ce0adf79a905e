package gfx

// Point is a screen coordinate, origin top-left.
type Point struct {
	X, Y int16
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int16) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Brush holds the colors and line thickness of a draw call.
//
// FG draws lines, borders and "on" pixels. BG fills, clears and draws "off"
// pixels of opaque pixmaps. Size is the line thickness; 0 is treated as 1.
type Brush struct {
	BG   Color
	FG   Color
	Size uint8
}

func (b Brush) thickness() int {
	if b.Size == 0 {
		return 1
	}
	return int(b.Size)
}

// spread returns how far a line of the brush thickness extends before and
// after its nominal coordinate. Odd sizes are centered; even sizes lean
// towards positive coordinates.
func (b Brush) spread() (before, after int) {
	s := b.thickness()
	if s == 1 {
		return 0, 0
	}
	if s%2 == 1 {
		return s / 2, s / 2
	}
	return s/2 - 1, s / 2
}

// normalize orders two corners so that a is top-left and b bottom-right.
func normalize(a, b Point) (Point, Point) {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return a, b
}
