package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const timerTextSize = 28

// StatusBar shows where the slideshow is: file path, position, and timer
type StatusBar struct {
	filename *widget.Label
	counter  *widget.Label
	timer    *canvas.Text
}

func NewStatusBar() *StatusBar {
	filename := widget.NewLabel("")
	filename.Wrapping = fyne.TextWrapBreak

	timer := canvas.NewText("00:00", theme.Color(theme.ColorNameForeground))
	timer.TextSize = timerTextSize
	timer.Alignment = fyne.TextAlignCenter
	timer.TextStyle = fyne.TextStyle{Bold: true}

	return &StatusBar{
		filename: filename,
		counter:  widget.NewLabel(""),
		timer:    timer,
	}
}

func (sb *StatusBar) Filename() fyne.CanvasObject { return sb.filename }
func (sb *StatusBar) Counter() fyne.CanvasObject  { return sb.counter }
func (sb *StatusBar) Timer() fyne.CanvasObject    { return sb.timer }

// Update sets all three fields, refreshing only those that changed
func (sb *StatusBar) Update(path, counter, timer string) {
	if sb.filename.Text != path {
		sb.filename.SetText(path)
	}
	if sb.counter.Text != counter {
		sb.counter.SetText(counter)
	}
	if sb.timer.Text != timer {
		sb.timer.Text = timer
		sb.timer.Refresh()
	}
}

func (sb *StatusBar) Text() (path, counter, timer string) {
	return sb.filename.Text, sb.counter.Text, sb.timer.Text
}
