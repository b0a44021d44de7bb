package state

import (
	"log"

	"DrawShape/internal/shape"
)

// Board is the collection of placed shapes together with the table of
// handlers attached to each of them. It is only touched from the UI event
// goroutine, so it does no locking.
type Board struct {
	order    []string // insertion order, also z-order
	shapes   map[string]*Placed
	handlers map[string]Handlers

	// OnChange is called after every mutation that affects rendering.
	OnChange func()
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		shapes:   make(map[string]*Placed),
		handlers: make(map[string]Handlers),
	}
}

// Insert puts s on top of the board and attaches h to it. The handlers are
// in place before Insert returns, so the shape never sees an event without
// them.
func (b *Board) Insert(s shape.Shape, h Handlers) *Placed {
	p := &Placed{ID: NewID(), Shape: s}
	b.shapes[p.ID] = p
	b.handlers[p.ID] = h
	b.order = append(b.order, p.ID)

	log.Printf("[BOARD] Placed %s %s", s.Kind, p.ID)
	b.changed()
	return p
}

// Remove deletes the shape and its handlers together. It returns false if
// no shape has that id.
func (b *Board) Remove(id string) bool {
	if _, exists := b.shapes[id]; !exists {
		return false
	}

	delete(b.shapes, id)
	delete(b.handlers, id)
	for i, oid := range b.order {
		if oid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	log.Printf("[BOARD] Removed %s", id)
	b.changed()
	return true
}

// Get returns the placed shape with the given id.
func (b *Board) Get(id string) (*Placed, bool) {
	p, ok := b.shapes[id]
	return p, ok
}

// Len returns the number of placed shapes.
func (b *Board) Len() int {
	return len(b.order)
}

// HandlerCount returns the number of shapes with attached handlers.
func (b *Board) HandlerCount() int {
	return len(b.handlers)
}

// Shapes returns the placed shapes bottom to top.
func (b *Board) Shapes() []*Placed {
	out := make([]*Placed, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.shapes[id])
	}
	return out
}

// ShapeAt returns the topmost shape containing (x, y).
func (b *Board) ShapeAt(x, y float64) (*Placed, bool) {
	pt := shape.Point{X: x, Y: y}
	for i := len(b.order) - 1; i >= 0; i-- {
		p := b.shapes[b.order[i]]
		if p.Shape.Contains(pt) {
			return p, true
		}
	}
	return nil, false
}

// Click dispatches a click to the handler of the given shape.
func (b *Board) Click(id string, btn Button) bool {
	h, ok := b.handlers[id]
	if !ok || h.Click == nil {
		return false
	}
	h.Click(id, btn)
	return true
}

// Enter dispatches pointer-enter to the given shape.
func (b *Board) Enter(id string) {
	if h, ok := b.handlers[id]; ok && h.Enter != nil {
		h.Enter(id)
	}
}

// Exit dispatches pointer-exit to the given shape.
func (b *Board) Exit(id string) {
	if h, ok := b.handlers[id]; ok && h.Exit != nil {
		h.Exit(id)
	}
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
