package state

import (
	"image/color"
)

// Aqua is the default highlight fill.
var Aqua = color.NRGBA{R: 0, G: 255, B: 255, A: 255}

// Highlighter recolors the shape under the pointer and restores it when
// the pointer leaves. Each placed shape keeps its own saved fill.
type Highlighter struct {
	board     *Board
	highlight color.Color
	hovered   string
}

// NewHighlighter creates a highlighter for board. A nil highlight means Aqua.
func NewHighlighter(board *Board, highlight color.Color) *Highlighter {
	if highlight == nil {
		highlight = Aqua
	}
	return &Highlighter{board: board, highlight: highlight}
}

// Enter moves the shape from Normal to Highlighted.
func (h *Highlighter) Enter(id string) {
	p, ok := h.board.Get(id)
	if !ok || p.Highlighted() {
		return
	}
	p.saved = p.Shape.Fill
	p.Shape.Fill = h.highlight
	h.board.changed()
}

// Exit moves the shape from Highlighted back to Normal.
func (h *Highlighter) Exit(id string) {
	p, ok := h.board.Get(id)
	if !ok || !p.Highlighted() {
		return
	}
	p.Shape.Fill = p.saved
	p.saved = nil
	h.board.changed()
}

// Track turns a pointer position into exit/enter events on the topmost
// shape under it.
func (h *Highlighter) Track(x, y float64) {
	next := ""
	if p, ok := h.board.ShapeAt(x, y); ok {
		next = p.ID
	}
	h.moveTo(next)
}

// Leave is called when the pointer leaves the surface.
func (h *Highlighter) Leave() {
	h.moveTo("")
}

// Hovered returns the id of the shape under the pointer, if any.
func (h *Highlighter) Hovered() string {
	if _, ok := h.board.Get(h.hovered); !ok {
		return ""
	}
	return h.hovered
}

func (h *Highlighter) moveTo(next string) {
	prev := h.Hovered()
	if prev == next {
		h.hovered = next
		return
	}
	if prev != "" {
		h.board.Exit(prev)
	}
	h.hovered = next
	if next != "" {
		h.board.Enter(next)
	}
}
