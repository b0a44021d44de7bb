package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"DrawShape/internal/config"
	"DrawShape/internal/shape"
	"DrawShape/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Controls holds the tool selection widgets. The values are read straight
// from the widgets whenever the router asks.
type Controls struct {
	kindSelect *widget.Select
	sizeSlider *widget.Slider
	color      color.Color
	swatches   []color.Color

	preview    *canvas.Rectangle
	colorLabel *widget.Label

	// OnExit is run by the Exit button.
	OnExit func()
}

var _ state.Tools = (*Controls)(nil)

func NewControls(cfg config.Config) *Controls {
	options := make([]string, 0, len(shape.Kinds()))
	for _, k := range shape.Kinds() {
		options = append(options, string(k))
	}

	c := &Controls{
		kindSelect: widget.NewSelect(options, nil),
		sizeSlider: widget.NewSlider(config.MinSize, config.MaxSize),
		swatches:   cfg.SwatchColors(),
		preview:    canvas.NewRectangle(cfg.Color()),
		colorLabel: widget.NewLabel(""),
	}
	c.kindSelect.SetSelected(cfg.DefaultKind)
	c.sizeSlider.SetValue(cfg.DefaultSize)
	c.preview.SetMinSize(fyne.NewSize(32, 32))
	c.SetColor(cfg.Color())
	return c
}

func (c *Controls) Kind() shape.Kind {
	return shape.Kind(c.kindSelect.Selected)
}

func (c *Controls) Color() color.Color {
	return c.color
}

func (c *Controls) Size() float64 {
	return c.sizeSlider.Value
}

func (c *Controls) SetKind(k shape.Kind) {
	c.kindSelect.SetSelected(string(k))
}

func (c *Controls) SetSize(size float64) {
	c.sizeSlider.SetValue(size)
}

func (c *Controls) SetColor(col color.Color) {
	c.color = col
	c.preview.FillColor = col
	c.preview.Refresh()
	c.colorLabel.SetText(config.FormatColor(col))
}

func (c *Controls) exit() {
	if c.OnExit != nil {
		c.OnExit()
	}
}

// Bar lays the controls out in a row. win parents the color picker dialog.
func (c *Controls) Bar(win fyne.Window) fyne.CanvasObject {
	exitButton := widget.NewButton("Exit", c.exit)

	colorBox := container.NewHBox()
	for _, col := range c.swatches {
		colorBox.Add(newColorSwatch(col, c.SetColor))
	}
	more := widget.NewButton("More…", func() {
		picker := dialog.NewColorPicker("Color", "Pick a fill color", c.SetColor, win)
		picker.Advanced = true
		picker.SetColor(c.color)
		picker.Show()
	})

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), c.sizeSlider)

	return container.NewHBox(
		layout.NewSpacer(),
		exitButton,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		more,
		c.preview,
		c.colorLabel,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		widget.NewLabel("Shape:"),
		c.kindSelect,
		layout.NewSpacer(),
	)
}
