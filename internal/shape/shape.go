// Package shape builds the geometry of the shapes that can be placed on the
// drawing surface.
package shape

import (
	"errors"
	"fmt"
	"image/color"
)

// Kind names a shape type as it appears in the shape selector.
type Kind string

const (
	KindCircle    Kind = "Circle"
	KindRectangle Kind = "Rectangle"
	KindPolygon   Kind = "Polygon"
)

// ErrUnknownKind is returned when a shape kind has no geometry.
var ErrUnknownKind = errors.New("unknown shape kind")

// Kinds returns the selectable kinds in selector order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindRectangle, KindPolygon}
}

// ParseKind maps a selector label to its Kind.
func ParseKind(label string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == label {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, label)
}

// Geometry is the kind-specific part of a Shape.
type Geometry interface {
	Contains(p Point) bool
	Bounds() Rect
}

// Shape is a tagged variant: Kind tells which concrete Geometry it carries.
type Shape struct {
	Kind     Kind
	Geometry Geometry
	Fill     color.Color
}

// Contains reports whether p lies inside the shape.
func (s Shape) Contains(p Point) bool {
	if s.Geometry == nil {
		return false
	}
	return s.Geometry.Contains(p)
}

// Bounds returns the axis-aligned bounding box of the shape.
func (s Shape) Bounds() Rect {
	if s.Geometry == nil {
		return Rect{}
	}
	return s.Geometry.Bounds()
}

// New builds a shape of the given kind centred on (x, y).
// It has no side effects; the caller decides where the shape goes.
func New(kind Kind, x, y, size float64, fill color.Color) (Shape, error) {
	var g Geometry
	switch kind {
	case KindCircle:
		g = newCircle(x, y, size)
	case KindRectangle:
		g = newRect(x, y, size)
	case KindPolygon:
		g = newHexagon(x, y, size)
	default:
		return Shape{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return Shape{Kind: kind, Geometry: g, Fill: fill}, nil
}

func newCircle(x, y, size float64) Circle {
	return Circle{Center: Point{X: x, Y: y}, Radius: size / 2}
}

func newRect(x, y, size float64) Rect {
	return Rect{X: x - size/2, Y: y - size/2, Width: size, Height: size}
}

// newHexagon lays out a horizontally elongated hexagon. The vertex order
// is fixed: left tip, then clockwise on screen.
func newHexagon(x, y, size float64) Polygon {
	half, quarter := size/2, size/4
	return Polygon{Vertices: []Point{
		{X: x - half, Y: y},
		{X: x - quarter, Y: y - half},
		{X: x + quarter, Y: y - half},
		{X: x + half, Y: y},
		{X: x + quarter, Y: y + half},
		{X: x - quarter, Y: y + half},
	}}
}
