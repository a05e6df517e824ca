package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestFileListHighlightDoesNotEmit(t *testing.T) {
	test.NewTempApp(t)

	var picked []string
	fl := NewFileList([]string{"a.png", "b.png", "c.png"})
	fl.SetSelectHandler(func(name string) { picked = append(picked, name) })

	fl.Highlight(1)
	assert.Equal(t, 1, fl.Selected())
	assert.Empty(t, picked)

	fl.list.Select(2)
	assert.Equal(t, 2, fl.Selected())
	assert.Equal(t, []string{"c.png"}, picked)
}

func TestToolbarPauseLabel(t *testing.T) {
	test.NewTempApp(t)

	tb := NewToolbar(NewStatusBar().Counter())
	_, _, pause, _, _ := tb.Buttons()
	assert.Equal(t, "Pause", pause.Text)

	tb.SetPaused(true)
	assert.Equal(t, "Run", pause.Text)

	tb.SetPaused(false)
	assert.Equal(t, "Pause", pause.Text)
}

func TestToolbarWithoutHandlers(t *testing.T) {
	test.NewTempApp(t)

	tb := NewToolbar(NewStatusBar().Counter())
	prev, next, pause, reset, exit := tb.Buttons()

	assert.NotPanics(t, func() {
		test.Tap(prev)
		test.Tap(next)
		test.Tap(pause)
		test.Tap(reset)
		test.Tap(exit)
	})
}
