package views

import (
	"sync"

	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Shell owns the single application window. It hosts the folder picker and
// notices first, then the gallery itself.
type Shell struct {
	app    fyne.App
	window fyne.Window
	size   fyne.Size
	logger logger.Logger

	quitOnce sync.Once
}

// NewShell creates the master window sized to size
func NewShell(app fyne.App, size fyne.Size, log logger.Logger) *Shell {
	window := app.NewWindow(windowTitle)
	window.Resize(size)
	window.SetMaster()

	return &Shell{
		app:    app,
		window: window,
		size:   size,
		logger: log,
	}
}

// ChooseFolder shows the folder dialog. onChosen receives an empty folder
// and nil error when the user cancels.
func (s *Shell) ChooseFolder(startDir string, onChosen func(folder string, err error)) {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		switch {
		case err != nil:
			onChosen("", err)
		case uri == nil:
			onChosen("", nil)
		default:
			onChosen(uri.Path(), nil)
		}
	}, s.window)

	if startDir != "" {
		location, err := storage.ListerForURI(storage.NewFileURI(startDir))
		if err != nil {
			s.logger.Warning("Shell", "start directory unusable", map[string]interface{}{
				"dir":   startDir,
				"error": err.Error(),
			})
		} else {
			picker.SetLocation(location)
		}
	}

	picker.Resize(s.size)
	s.window.Show()
	picker.Show()
}

// ShowNotice displays a blocking information dialog and calls onClosed
// once it is dismissed
func (s *Shell) ShowNotice(title, message string, onClosed func()) {
	notice := dialog.NewInformation(title, message, s.window)
	if onClosed != nil {
		notice.SetOnClosed(onClosed)
	}
	s.window.Show()
	notice.Show()
}

// OpenGallery replaces the window content with a gallery for set
func (s *Shell) OpenGallery(set *models.ImageSet) *GalleryView {
	s.logger.Info("Shell", "opening gallery", map[string]interface{}{
		"folder": set.Folder(),
		"images": set.Len(),
	})
	return NewGalleryView(s.window, set)
}

// Quit stops the fyne event loop. Safe from any goroutine, and only the
// first call has an effect.
func (s *Shell) Quit() {
	s.quitOnce.Do(func() {
		s.logger.Debug("Shell", "quitting", nil)
		s.app.Quit()
	})
}
