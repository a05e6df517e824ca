package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"sync"
	"time"

	"github.com/disintegration/imageorient"
	"github.com/golang/groupcache/lru"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder

	"gesture-gallery/internal/fit"
	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/metrics"
)

// ErrDecode marks an image file that could not be opened or decoded
var ErrDecode = errors.New("image decode failed")

// Box is the area an image is fitted into
type Box struct {
	Width  int
	Height int
}

func (b Box) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// ImageService decodes images and scales them to the display box. Fitted
// bitmaps are kept in a small LRU so re-rendering the same image on every
// timer tick does not touch the disk.
type ImageService struct {
	resizer Resizer
	logger  logger.Logger
	metrics *metrics.Metrics

	cacheMu sync.Mutex
	cache   *lru.Cache // nil when caching is disabled
}

// NewImageService creates an image service. cacheEntries of zero disables
// the frame cache. m may be nil.
func NewImageService(resizer Resizer, cacheEntries int, log logger.Logger, m *metrics.Metrics) *ImageService {
	is := &ImageService{
		resizer: resizer,
		logger:  log,
		metrics: m,
	}
	if cacheEntries > 0 {
		is.cache = lru.New(cacheEntries)
	}
	return is
}

// Render returns the image at path scaled to fit box
func (is *ImageService) Render(ctx context.Context, path string, box Box) (image.Image, error) {
	key := path + "@" + box.String()

	if img, ok := is.cached(key); ok {
		is.count(func(m *metrics.Metrics) { m.CacheHits.Inc() })
		return img, nil
	}
	is.count(func(m *metrics.Metrics) { m.CacheMisses.Inc() })

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	startTime := time.Now()

	src, format, err := is.Decode(path)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	width, height, err := fit.Fit(bounds.Dx(), bounds.Dy(), box.Width, box.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fitted, err := is.resizer.Resize(src, width, height)
	if err != nil {
		return nil, fmt.Errorf("resizing %s: %w", path, err)
	}

	is.store(key, fitted)

	is.logger.Debug("ImageService", "image fitted", map[string]interface{}{
		"path":     path,
		"format":   format,
		"natural":  fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"fitted":   fmt.Sprintf("%dx%d", width, height),
		"resizer":  is.resizer.Name(),
		"duration": time.Since(startTime).String(),
	})

	return fitted, nil
}

// Decode reads the image at path with its EXIF orientation applied
func (is *ImageService) Decode(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer file.Close()

	img, format, err := imageorient.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return img, format, nil
}

// Purge drops every cached frame
func (is *ImageService) Purge() {
	if is.cache == nil {
		return
	}

	is.cacheMu.Lock()
	defer is.cacheMu.Unlock()
	is.cache.Clear()
}

// Shutdown releases cached frames
func (is *ImageService) Shutdown() {
	is.Purge()
}

func (is *ImageService) cached(key string) (image.Image, bool) {
	if is.cache == nil {
		return nil, false
	}

	is.cacheMu.Lock()
	defer is.cacheMu.Unlock()

	v, ok := is.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.(image.Image), true
}

func (is *ImageService) store(key string, img image.Image) {
	if is.cache == nil {
		return
	}

	is.cacheMu.Lock()
	defer is.cacheMu.Unlock()
	is.cache.Add(key, img)
}

func (is *ImageService) count(fn func(m *metrics.Metrics)) {
	if is.metrics != nil {
		fn(is.metrics)
	}
}
