package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/models"
)

// SupportedExtensions lists the file types offered in the gallery
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".tiff", ".bmp"}

// LibraryService turns a folder into an ImageSet
type LibraryService struct {
	logger  logger.Logger
	shuffle func([]string) []string
}

func NewLibraryService(log logger.Logger) *LibraryService {
	return &LibraryService{
		logger:  log,
		shuffle: lo.Shuffle[string],
	}
}

// WithShuffle replaces the ordering step, mostly so tests get a stable order
func (ls *LibraryService) WithShuffle(shuffle func([]string) []string) *LibraryService {
	ls.shuffle = shuffle
	return ls
}

// Scan lists the images directly inside folder in random order. Sub folders
// and files of other types are skipped. An empty result is reported as
// models.ErrEmptyImageSet.
func (ls *LibraryService) Scan(folder string) (*models.ImageSet, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder: %w", err)
	}

	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), IsSupportedImage(entry.Name()) && isRegularFile(filepath.Join(folder, entry.Name()))
	})

	ls.logger.Info("LibraryService", "folder scanned", map[string]interface{}{
		"folder":  folder,
		"entries": len(entries),
		"images":  len(names),
	})

	return models.NewImageSet(folder, ls.shuffle(names))
}

// IsSupportedImage reports whether name has one of SupportedExtensions,
// ignoring case
func IsSupportedImage(name string) bool {
	return lo.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(name)))
}

// isRegularFile follows symlinks, so a link to an image counts as an image
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
