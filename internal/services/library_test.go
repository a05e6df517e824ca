package services

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/models"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func sorted(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}

func TestScanFiltersEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "B.JPG", "c.jpeg", "d.Tiff", "e.bmp", "notes.txt", "anim.gif", "noext"} {
		touch(t, filepath.Join(dir, name))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0o755))
	touch(t, filepath.Join(dir, "folder.png", "nested.png"))

	set, err := NewLibraryService(logger.NoOpLogger{}).Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, set.Folder())
	assert.Equal(t, []string{"B.JPG", "a.png", "c.jpeg", "d.Tiff", "e.bmp"}, sorted(set.Names()))
}

func TestScanUsesShuffle(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		touch(t, filepath.Join(dir, name))
	}

	reverse := func(names []string) []string {
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
		return names
	}

	set, err := NewLibraryService(logger.NoOpLogger{}).WithShuffle(reverse).Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"c.png", "b.png", "a.png"}, set.Names())
}

func TestScanEmptyFolder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))

	_, err := NewLibraryService(logger.NoOpLogger{}).Scan(dir)
	assert.ErrorIs(t, err, models.ErrEmptyImageSet)
}

func TestScanMissingFolder(t *testing.T) {
	_, err := NewLibraryService(logger.NoOpLogger{}).Scan(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrEmptyImageSet)
}

func TestIsSupportedImage(t *testing.T) {
	assert.True(t, IsSupportedImage("x.PNG"))
	assert.True(t, IsSupportedImage("photo.final.jpeg"))
	assert.False(t, IsSupportedImage("x.webp"))
	assert.False(t, IsSupportedImage("png"))
}
