package state

import (
	"fmt"
	"log"

	"DrawShape/internal/shape"
)

// Action is what a routed click did to the board.
type Action int

const (
	ActionNone Action = iota
	ActionPlaced
	ActionRemoved
)

// Click is a pointer click in surface-local coordinates. Target is the id
// of the clicked shape, or empty for the background.
type Click struct {
	X, Y   float64
	Button Button
	Target string
}

// Router decides what a click does: a primary click on the background
// places a shape, a secondary click on a shape removes it, and anything
// else is ignored.
type Router struct {
	board *Board
	tools Tools
	hover *Highlighter
}

// NewRouter creates a router placing shapes on board with the selection
// read from tools.
func NewRouter(board *Board, tools Tools, hover *Highlighter) *Router {
	return &Router{board: board, tools: tools, hover: hover}
}

// Click routes a single click.
func (r *Router) Click(c Click) (Action, error) {
	if c.Target == "" {
		if c.Button != ButtonPrimary {
			return ActionNone, nil
		}
		if err := r.place(c.X, c.Y); err != nil {
			return ActionNone, err
		}
		return ActionPlaced, nil
	}

	before := r.board.Len()
	r.board.Click(c.Target, c.Button)
	if r.board.Len() < before {
		return ActionRemoved, nil
	}
	return ActionNone, nil
}

func (r *Router) place(x, y float64) error {
	s, err := shape.New(r.tools.Kind(), x, y, r.tools.Size(), r.tools.Color())
	if err != nil {
		return fmt.Errorf("place shape at (%.1f, %.1f): %w", x, y, err)
	}
	r.board.Insert(s, Handlers{
		Click: r.shapeClicked,
		Enter: r.hover.Enter,
		Exit:  r.hover.Exit,
	})
	return nil
}

func (r *Router) shapeClicked(id string, b Button) {
	if b != ButtonSecondary {
		return
	}
	if !r.board.Remove(id) {
		log.Printf("[ROUTER] Shape %s already gone", id)
	}
}
