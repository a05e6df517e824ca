package views

import (
	"image"
	"testing"

	"gesture-gallery/internal/models"
	"gesture-gallery/internal/slideshow"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGallery(t *testing.T) (*GalleryView, *models.ImageSet, *[]slideshow.Event) {
	t.Helper()
	test.NewTempApp(t)

	set, err := models.NewImageSet("/photos", []string{"a.png", "b.jpg", "c.bmp"})
	require.NoError(t, err)

	window := test.NewTempWindow(t, nil)
	view := NewGalleryView(window, set)

	var events []slideshow.Event
	view.SetEventHandler(func(ev slideshow.Event) {
		events = append(events, ev)
	})
	return view, set, &events
}

func TestButtonsEmitEvents(t *testing.T) {
	view, _, events := newTestGallery(t)
	prev, next, pause, reset, exit := view.toolbar.Buttons()

	test.Tap(next)
	test.Tap(prev)
	test.Tap(pause)
	test.Tap(reset)
	test.Tap(exit)

	assert.Equal(t, []slideshow.Event{
		slideshow.Next{},
		slideshow.Prev{},
		slideshow.TogglePause{},
		slideshow.Reset{},
		slideshow.Exit{},
	}, *events)
}

func TestKeysMapToNavigation(t *testing.T) {
	tests := []struct {
		key  fyne.KeyName
		want slideshow.Event
	}{
		{fyne.KeyDown, slideshow.Next{}},
		{fyne.KeyPageDown, slideshow.Next{}},
		{fyne.KeyRight, slideshow.Next{}},
		{fyne.KeyUp, slideshow.Prev{}},
		{fyne.KeyPageUp, slideshow.Prev{}},
		{fyne.KeyLeft, slideshow.Prev{}},
		{fyne.KeySpace, slideshow.TogglePause{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, ok := keyEvent(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := keyEvent(fyne.KeyA)
	assert.False(t, ok)
}

func TestTypedKeyEmitsEvent(t *testing.T) {
	view, _, events := newTestGallery(t)

	view.handleKey(&fyne.KeyEvent{Name: fyne.KeyPageDown})
	view.handleKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.Equal(t, []slideshow.Event{slideshow.Next{}}, *events)
}

func TestShowUpdatesLabels(t *testing.T) {
	view, set, events := newTestGallery(t)

	frame := slideshow.Frame{
		Index:   2,
		Count:   set.Len(),
		Name:    set.Name(2),
		Path:    set.Path(2),
		Counter: slideshow.FormatCounter(2, set.Len()),
		Timer:   slideshow.FormatElapsed(1234),
		Paused:  true,
	}
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))

	view.show(frame, img)

	path, counter, timer := view.statusBar.Text()
	assert.Equal(t, set.Path(2), path)
	assert.Equal(t, "File 3 of 3", counter)
	assert.Equal(t, "00:12", timer)

	_, _, pause, _, _ := view.toolbar.Buttons()
	assert.Equal(t, "Run", pause.Text)
	assert.Equal(t, 2, view.fileList.Selected())
	assert.Same(t, img, view.imageDisplay.CurrentImage())

	assert.Empty(t, *events, "highlighting the current file must not emit a selection")
}

func TestShowWithoutImage(t *testing.T) {
	view, set, _ := newTestGallery(t)

	view.show(slideshow.Frame{
		Index:   0,
		Count:   set.Len(),
		Path:    set.Path(0),
		Counter: slideshow.FormatCounter(0, set.Len()),
		Timer:   slideshow.FormatElapsed(0),
	}, nil)

	assert.Nil(t, view.imageDisplay.CurrentImage())
	_, _, pause, _, _ := view.toolbar.Buttons()
	assert.Equal(t, "Pause", pause.Text)
}

func TestClickReturnsKeyboardToCanvas(t *testing.T) {
	view, _, events := newTestGallery(t)
	_, next, pause, _, _ := view.toolbar.Buttons()
	c := view.window.Canvas()

	c.Focus(pause)
	require.NotNil(t, c.Focused())

	test.Tap(next)
	assert.Nil(t, c.Focused())

	// with nothing focused the canvas key handler sees the key
	c.OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeySpace})
	assert.Equal(t, []slideshow.Event{slideshow.Next{}, slideshow.TogglePause{}}, *events)
}

func TestSelectionReturnsKeyboardToCanvas(t *testing.T) {
	view, set, events := newTestGallery(t)
	_, _, pause, _, _ := view.toolbar.Buttons()
	c := view.window.Canvas()

	c.Focus(pause)
	view.emitUnfocused(slideshow.Select{Name: set.Name(1)})

	assert.Nil(t, c.Focused())
	assert.Equal(t, []slideshow.Event{slideshow.Select{Name: set.Name(1)}}, *events)
}

func TestImageShownAtDevicePixels(t *testing.T) {
	view, set, _ := newTestGallery(t)
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))

	view.show(slideshow.Frame{
		Count:   set.Len(),
		Path:    set.Path(0),
		Counter: slideshow.FormatCounter(0, set.Len()),
		Timer:   slideshow.FormatElapsed(0),
	}, img)

	scale := view.window.Canvas().Scale()
	size := view.imageDisplay.MinSize()
	assert.InDelta(t, 120/scale, size.Width, 0.01)
	assert.InDelta(t, 80/scale, size.Height, 0.01)
}
