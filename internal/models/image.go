package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
)

var (
	ErrEmptyImageSet = errors.New("no files in folder")
	ErrNotFound      = errors.New("image not in set")
)

// ImageSet is the ordered list of images shown during a session. It is built
// once at startup and never modified afterwards.
type ImageSet struct {
	folder string
	names  []string
}

// NewImageSet creates a set over names, which are relative to folder. The
// order of names is kept as given.
func NewImageSet(folder string, names []string) (*ImageSet, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", folder, ErrEmptyImageSet)
	}

	owned := make([]string, len(names))
	copy(owned, names)

	return &ImageSet{
		folder: folder,
		names:  owned,
	}, nil
}

// Folder returns the directory the set was read from
func (s *ImageSet) Folder() string {
	return s.folder
}

// Len returns the number of images, always at least one
func (s *ImageSet) Len() int {
	return len(s.names)
}

// Name returns the file name at index i
func (s *ImageSet) Name(i int) string {
	return s.names[i]
}

// Path returns the full path of the image at index i
func (s *ImageSet) Path(i int) string {
	return filepath.Join(s.folder, s.names[i])
}

// Names returns a copy of the file names in display order
func (s *ImageSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// IndexOf returns the position of name in the set
func (s *ImageSet) IndexOf(name string) (int, error) {
	i := lo.IndexOf(s.names, name)
	if i < 0 {
		return 0, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return i, nil
}
