package views

import (
	"image"

	"gesture-gallery/internal/models"
	"gesture-gallery/internal/slideshow"
	"gesture-gallery/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const windowTitle = "Image Browser"

// GalleryView is the slideshow window. It turns user input into slideshow
// events and draws the frames the driver sends back.
type GalleryView struct {
	window fyne.Window

	imageDisplay *components.ImageDisplay
	statusBar    *components.StatusBar
	fileList     *components.FileList
	toolbar      *components.Toolbar

	eventHandler func(slideshow.Event)
}

// NewGalleryView builds the window content for set inside window
func NewGalleryView(window fyne.Window, set *models.ImageSet) *GalleryView {
	view := &GalleryView{
		window: window,
	}

	view.initializeComponents(set)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (gv *GalleryView) initializeComponents(set *models.ImageSet) {
	gv.imageDisplay = components.NewImageDisplay()
	gv.statusBar = components.NewStatusBar()
	gv.fileList = components.NewFileList(set.Names())
	gv.toolbar = components.NewToolbar(gv.statusBar.Counter())
}

// buildLayout puts the image on the left and the controls in a column on
// the right: path, file list, navigation, timer, timer buttons
func (gv *GalleryView) buildLayout() {
	list := container.NewGridWrap(gv.fileList.MinSize(), gv.fileList.Widget())

	side := container.NewVBox(
		gv.statusBar.Filename(),
		list,
		gv.toolbar.NavigationRow(),
		gv.statusBar.Timer(),
		gv.toolbar.TimerRow(),
	)

	content := container.NewBorder(
		nil,
		nil,
		nil,
		container.NewPadded(side),
		container.NewCenter(gv.imageDisplay.GetContainer()),
	)

	gv.window.SetTitle(windowTitle)
	gv.window.SetContent(content)
}

func (gv *GalleryView) setupEventHandlers() {
	gv.toolbar.SetPrevHandler(func() { gv.emitUnfocused(slideshow.Prev{}) })
	gv.toolbar.SetNextHandler(func() { gv.emitUnfocused(slideshow.Next{}) })
	gv.toolbar.SetPauseHandler(func() { gv.emitUnfocused(slideshow.TogglePause{}) })
	gv.toolbar.SetResetHandler(func() { gv.emitUnfocused(slideshow.Reset{}) })
	gv.toolbar.SetExitHandler(func() { gv.emitUnfocused(slideshow.Exit{}) })

	gv.fileList.SetSelectHandler(func(name string) {
		gv.emitUnfocused(slideshow.Select{Name: name})
	})

	gv.window.Canvas().SetOnTypedKey(gv.handleKey)
	gv.window.SetCloseIntercept(func() {
		gv.emit(slideshow.Exit{})
	})
}

// SetEventHandler connects the view to whatever consumes its events,
// normally Driver.Send
func (gv *GalleryView) SetEventHandler(handler func(slideshow.Event)) {
	gv.eventHandler = handler
}

// Show displays the window
func (gv *GalleryView) Show() {
	gv.window.Show()
}

// Render is safe to call from any goroutine
func (gv *GalleryView) Render(frame slideshow.Frame, img image.Image) {
	fyne.Do(func() {
		gv.show(frame, img)
	})
}

func (gv *GalleryView) show(frame slideshow.Frame, img image.Image) {
	gv.statusBar.Update(frame.Path, frame.Counter, frame.Timer)
	gv.toolbar.SetPaused(frame.Paused)
	gv.fileList.Highlight(frame.Index)

	if img == nil || gv.imageDisplay.CurrentImage() != img {
		gv.imageDisplay.SetImage(img, gv.window.Canvas().Scale())
	}
}

func (gv *GalleryView) handleKey(ev *fyne.KeyEvent) {
	if event, ok := keyEvent(ev.Name); ok {
		gv.emit(event)
	}
}

// emitUnfocused hands keyboard input back to the canvas after a click, so
// the navigation keys keep working instead of driving the clicked widget
func (gv *GalleryView) emitUnfocused(event slideshow.Event) {
	gv.window.Canvas().Unfocus()
	gv.emit(event)
}

func (gv *GalleryView) emit(event slideshow.Event) {
	if gv.eventHandler != nil {
		gv.eventHandler(event)
	}
}

func keyEvent(key fyne.KeyName) (slideshow.Event, bool) {
	switch key {
	case fyne.KeyDown, fyne.KeyPageDown, fyne.KeyRight:
		return slideshow.Next{}, true
	case fyne.KeyUp, fyne.KeyPageUp, fyne.KeyLeft:
		return slideshow.Prev{}, true
	case fyne.KeySpace:
		return slideshow.TogglePause{}, true
	}
	return nil, false
}
