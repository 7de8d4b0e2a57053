package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// TunerPanel renders one slider per threshold control. It implements
// tuning.Surface, so attaching a session populates it.
type TunerPanel struct {
	container *fyne.Container
	sliders   map[string]*widget.Slider
}

func NewTunerPanel() *TunerPanel {
	panel := &TunerPanel{
		sliders: make(map[string]*widget.Slider),
	}
	panel.container = container.NewVBox(widget.NewLabel("Threshold bounds"))
	return panel
}

// CreateControl adds a labeled slider bound to [min,max] that reports
// every change through onChanged.
func (p *TunerPanel) CreateControl(label string, initial, min, max float64, onChanged func(float64)) {
	valueLabel := widget.NewLabel(label + ": " + strconv.FormatFloat(initial, 'f', 0, 64))

	slider := widget.NewSlider(min, max)
	slider.SetValue(initial)
	slider.OnChanged = func(value float64) {
		valueLabel.SetText(label + ": " + strconv.FormatFloat(value, 'f', 0, 64))
		onChanged(value)
	}

	p.container.Add(container.NewVBox(valueLabel, slider))
	p.sliders[label] = slider
}

// Container returns the panel's root container for window layout.
func (p *TunerPanel) Container() *fyne.Container {
	return p.container
}
