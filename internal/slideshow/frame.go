package slideshow

import (
	"fmt"

	"gesture-gallery/internal/models"
)

// Frame is what the window should show for a given state. It is recomputed
// after every transition and never stored.
type Frame struct {
	Index   int
	Count   int
	Name    string
	Path    string
	Counter string
	Timer   string
	Paused  bool
}

// FrameOf derives the frame for s
func FrameOf(s PlaybackState, set *models.ImageSet) Frame {
	return Frame{
		Index:   s.Index,
		Count:   set.Len(),
		Name:    set.Name(s.Index),
		Path:    set.Path(s.Index),
		Counter: FormatCounter(s.Index, set.Len()),
		Timer:   FormatElapsed(s.Elapsed),
		Paused:  s.Paused,
	}
}

// FormatCounter renders a zero-based index as "File i of N"
func FormatCounter(index, count int) string {
	return fmt.Sprintf("File %d of %d", index+1, count)
}

// FormatElapsed renders centiseconds as mm:ss. Hundredths are dropped.
func FormatElapsed(cs int64) string {
	seconds := cs / 100
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
