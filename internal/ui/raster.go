package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2/canvas"
	"github.com/fogleman/gg"

	"DrawShape/internal/shape"
	"DrawShape/internal/state"
)

// newPolygonRaster draws a placed polygon. The raster reads the shape on
// every paint, so a fill change only needs a Refresh.
func newPolygonRaster(p *state.Placed) *canvas.Raster {
	return canvas.NewRaster(func(w, h int) image.Image {
		pg, ok := p.Shape.Geometry.(shape.Polygon)
		if !ok {
			return image.NewNRGBA(image.Rect(0, 0, w, h))
		}
		return renderPolygon(pg, p.Fill(), w, h)
	})
}

// renderPolygon fills pg scaled so its bounding box covers a w×h image.
func renderPolygon(pg shape.Polygon, fill color.Color, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	b := pg.Bounds()
	if w <= 0 || h <= 0 || b.Width == 0 || b.Height == 0 {
		return dc.Image()
	}

	sx := float64(w) / b.Width
	sy := float64(h) / b.Height
	for i, v := range pg.Vertices {
		x, y := (v.X-b.X)*sx, (v.Y-b.Y)*sy
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(fill)
	dc.Fill()
	return dc.Image()
}
