package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Readout shows the pointer position in window coordinates.
type Readout struct {
	label *widget.Label
}

func NewReadout() *Readout {
	return &Readout{label: widget.NewLabel("X - 0, Y - 0")}
}

// Update displays pos, which must be window-level, not surface-local.
func (r *Readout) Update(pos fyne.Position) {
	r.label.SetText(FormatCoordinates(pos))
}

// Text returns what the readout currently shows.
func (r *Readout) Text() string {
	return r.label.Text
}

func FormatCoordinates(pos fyne.Position) string {
	return fmt.Sprintf("X - %.1f, Y - %.1f", pos.X, pos.Y)
}
