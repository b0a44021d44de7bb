package shape

import "math"

// Point is a position in surface-local coordinates.
type Point struct {
	X float64
	Y float64
}

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains returns true if p is inside or on the circle.
func (c Circle) Contains(p Point) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return math.Hypot(dx, dy) <= c.Radius
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains returns true if p is inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Bounds returns r.
func (r Rect) Bounds() Rect {
	return r
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Polygon is a closed outline; the last vertex connects back to the first.
type Polygon struct {
	Vertices []Point
}

// Contains casts a ray to the right of p and counts edge crossings.
func (pg Polygon) Contains(p Point) bool {
	n := len(pg.Vertices)
	if n < 3 {
		return false
	}

	inside := false
	for i := 0; i < n; i++ {
		a, b := pg.Vertices[i], pg.Vertices[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the smallest rectangle holding every vertex.
func (pg Polygon) Bounds() Rect {
	if len(pg.Vertices) == 0 {
		return Rect{}
	}

	minX, minY := pg.Vertices[0].X, pg.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range pg.Vertices[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
