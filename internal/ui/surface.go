package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"DrawShape/internal/shape"
	"DrawShape/internal/state"
)

// Surface is the drawing area. It turns pointer events into clicks for the
// router, hover tracking for the highlighter and readout updates, and
// renders whatever is on the board.
type Surface struct {
	widget.BaseWidget
	board   *state.Board
	router  *state.Router
	hover   *state.Highlighter
	readout *Readout
	size    fyne.Size
}

var _ fyne.Widget = (*Surface)(nil)
var _ fyne.Tappable = (*Surface)(nil)
var _ fyne.SecondaryTappable = (*Surface)(nil)
var _ fyne.Draggable = (*Surface)(nil)
var _ desktop.Hoverable = (*Surface)(nil)
var _ desktop.Mouseable = (*Surface)(nil)

func NewSurface(board *state.Board, router *state.Router, hover *state.Highlighter, size fyne.Size) *Surface {
	s := &Surface{
		board:   board,
		router:  router,
		hover:   hover,
		readout: NewReadout(),
		size:    size,
	}
	s.ExtendBaseWidget(s)
	board.OnChange = s.Refresh
	return s
}

// Readout returns the coordinate readout shown in the corner.
func (s *Surface) Readout() *Readout {
	return s.readout
}

func (s *Surface) Tapped(e *fyne.PointEvent) {
	s.click(e.Position, state.ButtonPrimary)
}

func (s *Surface) TappedSecondary(e *fyne.PointEvent) {
	s.click(e.Position, state.ButtonSecondary)
}

func (s *Surface) MouseDown(*desktop.MouseEvent) {}

// MouseUp only handles the middle button; primary and secondary clicks
// arrive through Tapped and TappedSecondary.
func (s *Surface) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonTertiary {
		s.click(e.Position, state.ButtonTertiary)
	}
}

func (s *Surface) click(pos fyne.Position, b state.Button) {
	c := state.Click{X: float64(pos.X), Y: float64(pos.Y), Button: b}
	if p, ok := s.board.ShapeAt(c.X, c.Y); ok {
		c.Target = p.ID
	}
	if _, err := s.router.Click(c); err != nil {
		log.Printf("Click %s at (%.1f, %.1f) failed: %v", b, c.X, c.Y, err)
	}
}

func (s *Surface) MouseIn(e *desktop.MouseEvent) {
	s.MouseMoved(e)
}

func (s *Surface) MouseMoved(e *desktop.MouseEvent) {
	s.readout.Update(e.AbsolutePosition)
	s.hover.Track(float64(e.Position.X), float64(e.Position.Y))
}

func (s *Surface) MouseOut() {
	s.hover.Leave()
}

func (s *Surface) Dragged(e *fyne.DragEvent) {
	s.readout.Update(e.AbsolutePosition)
}

func (s *Surface) DragEnd() {}

func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	r := &surfaceRenderer{
		surface:    s,
		background: canvas.NewRectangle(color.White),
		shapes:     make(map[string]fyne.CanvasObject),
	}
	r.sync()
	return r
}

type surfaceRenderer struct {
	surface    *Surface
	background *canvas.Rectangle
	shapes     map[string]fyne.CanvasObject
	objects    []fyne.CanvasObject
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *surfaceRenderer) Refresh() {
	r.sync()
	canvas.Refresh(r.surface)
}

// sync keeps one canvas object per placed shape, creating objects for new
// shapes, dropping removed ones and repainting fills.
func (r *surfaceRenderer) sync() {
	placed := r.surface.board.Shapes()
	objects := make([]fyne.CanvasObject, 0, len(placed)+2)
	objects = append(objects, r.background)

	seen := make(map[string]bool, len(placed))
	for _, p := range placed {
		seen[p.ID] = true
		obj, ok := r.shapes[p.ID]
		if !ok {
			obj = newShapeObject(p)
			r.shapes[p.ID] = obj
		}
		paint(obj, p.Fill())
		objects = append(objects, obj)
	}
	for id := range r.shapes {
		if !seen[id] {
			delete(r.shapes, id)
		}
	}

	objects = append(objects, r.surface.readout.label)
	r.objects = objects
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	label := r.surface.readout.label
	label.Move(fyne.NewPos(0, 0))
	label.Resize(label.MinSize())
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return r.surface.size
}

func (r *surfaceRenderer) Destroy() {}

func newShapeObject(p *state.Placed) fyne.CanvasObject {
	var obj fyne.CanvasObject
	switch p.Shape.Kind {
	case shape.KindCircle:
		obj = canvas.NewCircle(p.Fill())
	case shape.KindRectangle:
		obj = canvas.NewRectangle(p.Fill())
	default:
		obj = newPolygonRaster(p)
	}

	b := p.Shape.Bounds()
	obj.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
	obj.Resize(fyne.NewSize(float32(b.Width), float32(b.Height)))
	return obj
}

func paint(obj fyne.CanvasObject, fill color.Color) {
	switch o := obj.(type) {
	case *canvas.Circle:
		o.FillColor = fill
	case *canvas.Rectangle:
		o.FillColor = fill
	}
	obj.Refresh()
}
