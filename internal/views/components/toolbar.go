package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	pauseLabel = "Pause"
	runLabel   = "Run"
)

// Toolbar holds the navigation and timer buttons
type Toolbar struct {
	navigation *fyne.Container
	timer      *fyne.Container

	prevButton  *widget.Button
	nextButton  *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	exitButton  *widget.Button

	prevHandler  func()
	nextHandler  func()
	pauseHandler func()
	resetHandler func()
	exitHandler  func()
}

func NewToolbar(counter fyne.CanvasObject) *Toolbar {
	t := &Toolbar{}
	t.createComponents()
	t.buildLayout(counter)
	return t
}

func (t *Toolbar) createComponents() {
	t.prevButton = widget.NewButton("Prev", func() { call(t.prevHandler) })
	t.nextButton = widget.NewButton("Next", func() { call(t.nextHandler) })

	t.pauseButton = widget.NewButton(pauseLabel, func() { call(t.pauseHandler) })
	t.pauseButton.Importance = widget.HighImportance

	t.resetButton = widget.NewButton("Reset", func() { call(t.resetHandler) })
	t.resetButton.Importance = widget.SuccessImportance

	t.exitButton = widget.NewButton("Exit", func() { call(t.exitHandler) })
	t.exitButton.Importance = widget.DangerImportance
}

// buildLayout places the file counter next to Prev/Next, as one row, and the
// timer buttons as another
func (t *Toolbar) buildLayout(counter fyne.CanvasObject) {
	t.navigation = container.NewHBox(t.prevButton, t.nextButton, counter)
	t.timer = container.NewHBox(t.pauseButton, t.resetButton, t.exitButton)
}

func (t *Toolbar) NavigationRow() *fyne.Container {
	return t.navigation
}

func (t *Toolbar) TimerRow() *fyne.Container {
	return t.timer
}

func (t *Toolbar) SetPrevHandler(handler func())  { t.prevHandler = handler }
func (t *Toolbar) SetNextHandler(handler func())  { t.nextHandler = handler }
func (t *Toolbar) SetPauseHandler(handler func()) { t.pauseHandler = handler }
func (t *Toolbar) SetResetHandler(handler func()) { t.resetHandler = handler }
func (t *Toolbar) SetExitHandler(handler func())  { t.exitHandler = handler }

// SetPaused switches the pause button between "Pause" and "Run"
func (t *Toolbar) SetPaused(paused bool) {
	label := pauseLabel
	if paused {
		label = runLabel
	}
	if t.pauseButton.Text != label {
		t.pauseButton.SetText(label)
	}
}

// Buttons exposes the buttons in layout order, for tests and focus handling
func (t *Toolbar) Buttons() (prev, next, pause, reset, exit *widget.Button) {
	return t.prevButton, t.nextButton, t.pauseButton, t.resetButton, t.exitButton
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
