package services

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/metrics"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 90, A: 255})
		}
	}
	return img
}

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch filepath.Ext(path) {
	case ".png":
		require.NoError(t, png.Encode(f, img))
	case ".bmp":
		require.NoError(t, bmp.Encode(f, img))
	case ".tiff":
		require.NoError(t, tiff.Encode(f, img, nil))
	default:
		t.Fatalf("no encoder for %s", path)
	}
}

func TestRenderFitsToBox(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	wide := filepath.Join(dir, "wide.bmp")
	tall := filepath.Join(dir, "tall.tiff")
	writeImage(t, small, solid(30, 20))
	writeImage(t, wide, solid(400, 100))
	writeImage(t, tall, solid(50, 300))

	svc := NewImageService(DrawResizer{}, 4, logger.NoOpLogger{}, nil)
	box := Box{Width: 120, Height: 85}

	tests := []struct {
		path         string
		wantW, wantH int
	}{
		{small, 120, 80},
		{wide, 120, 30},
		{tall, 14, 85},
	}

	for _, tt := range tests {
		img, err := svc.Render(context.Background(), tt.path, box)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.wantW, img.Bounds().Dx(), tt.path)
		assert.Equal(t, tt.wantH, img.Bounds().Dy(), tt.path)
	}
}

func TestRenderCachesFrames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writeImage(t, path, solid(60, 40))

	m := metrics.New()
	svc := NewImageService(DrawResizer{}, 2, logger.NoOpLogger{}, m)
	box := Box{Width: 120, Height: 85}

	first, err := svc.Render(context.Background(), path, box)
	require.NoError(t, err)

	// the cache answers even once the file is gone
	require.NoError(t, os.Remove(path))
	second, err := svc.Render(context.Background(), path, box)
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.EqualValues(t, 1, testutil.ToFloat64(m.CacheMisses))
	assert.EqualValues(t, 1, testutil.ToFloat64(m.CacheHits))

	svc.Purge()
	_, err = svc.Render(context.Background(), path, box)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRenderWithoutCacheRereads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writeImage(t, path, solid(60, 40))

	svc := NewImageService(DrawResizer{}, 0, logger.NoOpLogger{}, nil)
	_, err := svc.Render(context.Background(), path, Box{Width: 10, Height: 10})
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	_, err = svc.Render(context.Background(), path, Box{Width: 10, Height: 10})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRenderCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a jpeg"), 0o644))

	svc := NewImageService(DrawResizer{}, 4, logger.NoOpLogger{}, nil)
	_, err := svc.Render(context.Background(), path, Box{Width: 100, Height: 100})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	writeImage(t, path, solid(10, 10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewImageService(DrawResizer{}, 4, logger.NoOpLogger{}, nil)
	_, err := svc.Render(ctx, path, Box{Width: 100, Height: 100})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrawResizerKeepsSameSize(t *testing.T) {
	src := solid(8, 8)
	out, err := DrawResizer{}.Resize(src, 8, 8)
	require.NoError(t, err)
	assert.Same(t, src, out)

	_, err = DrawResizer{}.Resize(src, 0, 8)
	assert.Error(t, err)
}
