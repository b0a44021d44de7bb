package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"DrawShape/internal/config"
	"DrawShape/internal/state"
)

// Drawing is the assembled application: controls, surface and the state
// they share.
type Drawing struct {
	Window   fyne.Window
	Board    *state.Board
	Controls *Controls
	Surface  *Surface
}

// NewDrawing wires everything into a new window of a.
func NewDrawing(a fyne.App, cfg config.Config) *Drawing {
	w := a.NewWindow(cfg.Title)

	board := state.NewBoard()
	controls := NewControls(cfg)
	hover := state.NewHighlighter(board, cfg.Highlight())
	router := state.NewRouter(board, controls, hover)
	surface := NewSurface(board, router, hover, fyne.NewSize(cfg.Width, cfg.Height))

	// Exit is immediate; no confirmation and nothing to save.
	controls.OnExit = a.Quit

	w.SetContent(container.NewBorder(nil, controls.Bar(w), nil, nil, surface))
	return &Drawing{Window: w, Board: board, Controls: controls, Surface: surface}
}

func RunApp(cfg config.Config) {
	myApp := app.New()
	d := NewDrawing(myApp, cfg)
	log.Printf("Starting %q with a %vx%v surface", cfg.Title, cfg.Width, cfg.Height)
	d.Window.ShowAndRun()
}
