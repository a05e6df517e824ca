package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gesture-gallery/internal/driver"
	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/models"
	"gesture-gallery/internal/slideshow"
)

const (
	AppName    = "Image Browser"
	AppID      = "com.gesture-gallery"
	AppVersion = "1.0.0"
)

// ErrNoFolderSelected means the folder dialog was dismissed. It ends the
// session but is not a failure.
var ErrNoFolderSelected = errors.New("no folder selected")

const (
	noticeCancelled = "Cancelling"
	noticeEmpty     = "No files in folder"
)

// Gallery is the slideshow window as the application sees it
type Gallery interface {
	driver.Renderer
	SetEventHandler(handler func(slideshow.Event))
	Show()
}

// Shell is the windowing system: dialogs, the gallery window, and the event
// loop that Quit stops
type Shell interface {
	ChooseFolder(startDir string, onChosen func(folder string, err error))
	ShowNotice(title, message string, onClosed func())
	OpenGallery(set *models.ImageSet) Gallery
	Quit()
}

// Scanner lists the images of a folder
type Scanner interface {
	Scan(folder string) (*models.ImageSet, error)
}

type Application struct {
	shell     Shell
	library   Scanner
	images    driver.Imager
	options   driver.Options
	startDir  string
	logger    logger.Logger
	lifecycle *Lifecycle

	ctx context.Context
	mu  sync.Mutex
	err error
}

func NewApplication(shell Shell, library Scanner, images driver.Imager, startDir string, opts driver.Options) *Application {
	if opts.Logger == nil {
		opts.Logger = logger.NoOpLogger{}
	}

	return &Application{
		shell:     shell,
		library:   library,
		images:    images,
		options:   opts,
		startDir:  startDir,
		logger:    opts.Logger,
		lifecycle: NewLifecycle(opts.Logger),
		ctx:       context.Background(),
	}
}

// Start opens the folder dialog. Everything after that happens in callbacks
// from the shell; the session ends with Shell.Quit.
func (a *Application) Start(ctx context.Context) {
	a.ctx = ctx
	a.logger.Info("Application", "starting", map[string]interface{}{
		"version":   AppVersion,
		"start_dir": a.startDir,
	})

	a.lifecycle.Go("cancel watcher", func() {
		select {
		case <-ctx.Done():
			a.shell.Quit()
		case <-a.lifecycle.Stopping():
		}
	})

	a.shell.ChooseFolder(a.startDir, a.onFolderChosen)
}

func (a *Application) onFolderChosen(folder string, err error) {
	switch {
	case err != nil:
		a.fail(fmt.Errorf("folder dialog: %w", err))
		return
	case folder == "":
		a.abort(ErrNoFolderSelected, noticeCancelled)
		return
	}

	set, err := a.library.Scan(folder)
	switch {
	case errors.Is(err, models.ErrEmptyImageSet):
		a.abort(err, noticeEmpty)
		return
	case err != nil:
		a.fail(err)
		return
	}

	a.openGallery(set)
}

func (a *Application) openGallery(set *models.ImageSet) {
	gallery := a.shell.OpenGallery(set)
	slides := driver.New(set, a.images, gallery, a.options)
	gallery.SetEventHandler(slides.Send)
	gallery.Show()

	a.lifecycle.Go("driver", func() {
		err := slides.Run(a.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			a.setErr(fmt.Errorf("slideshow: %w", err))
		}

		a.logger.Info("Application", "slideshow finished", map[string]interface{}{
			"index":         slides.State().Index,
			"auto_advances": slides.State().AutoAdvances,
		})
		a.shell.Quit()
	})
}

// abort ends the session early without recording a failure
func (a *Application) abort(reason error, notice string) {
	a.logger.Info("Application", "ending session", map[string]interface{}{
		"reason": reason.Error(),
	})
	a.shell.ShowNotice(AppName, notice, a.shell.Quit)
}

func (a *Application) fail(err error) {
	a.setErr(err)
	a.logger.Error("Application", err, nil)
	a.shell.ShowNotice(AppName, err.Error(), a.shell.Quit)
}

func (a *Application) setErr(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.err == nil {
		a.err = err
	}
}

// Err is the failure that ended the session, nil for a normal close or an
// early abort
func (a *Application) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.err
}

// Shutdown waits for the slideshow loop to stop. The loop itself is stopped
// by cancelling the context passed to Start.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}
