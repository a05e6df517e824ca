package main

import (
	"fmt"
	"os"

	appcore "gesture-gallery/internal/app"
	"gesture-gallery/internal/config"
	"gesture-gallery/internal/driver"
	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/metrics"
	"gesture-gallery/internal/models"
	"gesture-gallery/internal/opencv"
	"gesture-gallery/internal/services"
	"gesture-gallery/internal/shutdown"
	"gesture-gallery/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:     os.Args[0],
		Short:   "Timed slideshow of the images in a folder",
		Version: appcore.AppVersion,
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
}

func run(cfg config.Config) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(level, cfg.JSONLogs)

	manager := shutdown.NewManager(log)
	manager.Listen()
	defer manager.Shutdown()

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(manager.Context(), cfg.MetricsAddr); err != nil {
				log.Error("Metrics", fmt.Errorf("metrics server: %w", err), map[string]interface{}{
					"addr": cfg.MetricsAddr,
				})
			}
		}()
	}

	resizer := newResizer(cfg.Resizer)
	images := services.NewImageService(resizer, cfg.CacheEntries, log, m)
	library := services.NewLibraryService(log)

	fyneApp := app.NewWithID(appcore.AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      appcore.AppID,
		Name:    appcore.AppName,
		Version: appcore.AppVersion,
	})

	shell := views.NewShell(fyneApp, fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)), log)

	application := appcore.NewApplication(galleryShell{shell}, library, images, cfg.StartDir, driver.Options{
		Box:     services.Box{Width: cfg.BoxWidth, Height: cfg.BoxHeight},
		Logger:  log,
		Metrics: m,
	})

	// Components stop newest first: the slideshow loop, then the frame cache.
	manager.Register("image service", images)
	manager.Register("application", application)

	log.Info("Main", "configuration loaded", map[string]interface{}{
		"box":       fmt.Sprintf("%dx%d", cfg.BoxWidth, cfg.BoxHeight),
		"window":    fmt.Sprintf("%dx%d", cfg.WindowWidth, cfg.WindowHeight),
		"resizer":   resizer.Name(),
		"cache":     cfg.CacheEntries,
		"metrics":   cfg.MetricsAddr,
		"log_level": level.String(),
	})

	application.Start(manager.Context())
	fyneApp.Run()

	manager.Shutdown()
	return application.Err()
}

func newResizer(name string) services.Resizer {
	if name == config.ResizerOpenCV {
		return opencv.Resizer{}
	}
	return services.DrawResizer{}
}

// galleryShell narrows the views shell to the application's interface
type galleryShell struct {
	*views.Shell
}

func (s galleryShell) OpenGallery(set *models.ImageSet) appcore.Gallery {
	return s.Shell.OpenGallery(set)
}
