package state

import (
	"image/color"

	"DrawShape/internal/shape"
)

// Button identifies the pointer button of a click.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	}
	return "unknown"
}

// Tools is the current tool selection, owned by the controls.
type Tools interface {
	Kind() shape.Kind
	Color() color.Color
	Size() float64
}

// Placed is a shape that is currently on the board.
type Placed struct {
	ID    string
	Shape shape.Shape

	// saved holds the fill to restore; non-nil only while highlighted.
	saved color.Color
}

// Fill returns the color the shape is currently painted with.
func (p *Placed) Fill() color.Color {
	return p.Shape.Fill
}

// Highlighted reports whether the pointer is currently over the shape.
func (p *Placed) Highlighted() bool {
	return p.saved != nil
}

// Handlers is the set of callbacks attached to one placed shape.
type Handlers struct {
	Click func(id string, b Button)
	Enter func(id string)
	Exit  func(id string)
}
