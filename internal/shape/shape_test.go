package shape_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawShape/internal/shape"
)

var red = color.NRGBA{R: 255, A: 255}

func TestNewCircle(t *testing.T) {
	for size := 10.0; size <= 100; size += 7.5 {
		s, err := shape.New(shape.KindCircle, 33.5, 71, size, red)
		require.NoError(t, err)
		c, ok := s.Geometry.(shape.Circle)
		require.True(t, ok, "circle geometry")
		assert.Equal(t, size/2, c.Radius)
		assert.Equal(t, shape.Point{X: 33.5, Y: 71}, c.Center)
		assert.Equal(t, red, s.Fill)
	}
}

func TestNewRectangle(t *testing.T) {
	tests := []struct {
		x, y, size float64
	}{
		{100, 100, 40},
		{0, 0, 10},
		{12.5, 300, 100},
		{-5, 7, 33},
	}
	for _, tt := range tests {
		s, err := shape.New(shape.KindRectangle, tt.x, tt.y, tt.size, red)
		require.NoError(t, err)
		r, ok := s.Geometry.(shape.Rect)
		require.True(t, ok, "rect geometry")
		assert.Equal(t, tt.x-tt.size/2, r.X)
		assert.Equal(t, tt.y-tt.size/2, r.Y)
		assert.Equal(t, shape.Point{X: tt.x + tt.size/2, Y: tt.y + tt.size/2}, r.Max())
		assert.Equal(t, r.Width, r.Height)
	}
}

func TestNewPolygonVertexOrder(t *testing.T) {
	s, err := shape.New(shape.KindPolygon, 100, 50, 40, red)
	require.NoError(t, err)
	pg, ok := s.Geometry.(shape.Polygon)
	require.True(t, ok, "polygon geometry")
	assert.Equal(t, []shape.Point{
		{X: 80, Y: 50},
		{X: 90, Y: 30},
		{X: 110, Y: 30},
		{X: 120, Y: 50},
		{X: 110, Y: 70},
		{X: 90, Y: 70},
	}, pg.Vertices)
}

func TestNewPolygonAlwaysSixVertices(t *testing.T) {
	for size := 10.0; size <= 100; size += 13 {
		s, err := shape.New(shape.KindPolygon, size, -size, size, red)
		require.NoError(t, err)
		assert.Len(t, s.Geometry.(shape.Polygon).Vertices, 6)
	}
}

func TestNewUnknownKind(t *testing.T) {
	s, err := shape.New(shape.Kind("Triangle"), 1, 2, 30, red)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shape.ErrUnknownKind))
	assert.Nil(t, s.Geometry)
	assert.Contains(t, err.Error(), "Triangle")
}

func TestParseKind(t *testing.T) {
	for _, k := range shape.Kinds() {
		got, err := shape.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := shape.ParseKind("circle")
	assert.ErrorIs(t, err, shape.ErrUnknownKind)
}

func TestContains(t *testing.T) {
	circle, _ := shape.New(shape.KindCircle, 50, 50, 20, red)
	rect, _ := shape.New(shape.KindRectangle, 50, 50, 20, red)
	hex, _ := shape.New(shape.KindPolygon, 50, 50, 20, red)

	tests := []struct {
		name string
		s    shape.Shape
		p    shape.Point
		want bool
	}{
		{"circle center", circle, shape.Point{X: 50, Y: 50}, true},
		{"circle edge", circle, shape.Point{X: 60, Y: 50}, true},
		{"circle corner of bounds", circle, shape.Point{X: 59, Y: 59}, false},
		{"rect corner", rect, shape.Point{X: 40, Y: 40}, true},
		{"rect outside", rect, shape.Point{X: 61, Y: 50}, false},
		{"hex center", hex, shape.Point{X: 50, Y: 50}, true},
		{"hex cut corner", hex, shape.Point{X: 41, Y: 41}, false},
		{"hex near top", hex, shape.Point{X: 50, Y: 41}, true},
		{"zero shape", shape.Shape{}, shape.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Contains(tt.p))
		})
	}
}

func TestBounds(t *testing.T) {
	circle, _ := shape.New(shape.KindCircle, 50, 50, 20, red)
	hex, _ := shape.New(shape.KindPolygon, 50, 50, 20, red)

	assert.Equal(t, shape.Rect{X: 40, Y: 40, Width: 20, Height: 20}, circle.Bounds())
	assert.Equal(t, shape.Rect{X: 40, Y: 40, Width: 20, Height: 20}, hex.Bounds())
	assert.Equal(t, shape.Rect{}, shape.Shape{}.Bounds())
}
