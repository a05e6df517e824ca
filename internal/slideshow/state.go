// Package slideshow holds the playback state machine. It has no knowledge of
// widgets or decoding: every input is an Event, every output a new
// PlaybackState, and Frame derives what should be on screen.
package slideshow

import (
	"errors"
	"fmt"
	"time"

	"gesture-gallery/internal/models"
)

const (
	// TimeoutThreshold is how long an image stays up, in centiseconds,
	// before the slideshow moves on by itself.
	TimeoutThreshold = 1000

	// PollInterval is how often a running slideshow checks the clock
	PollInterval = 10 * time.Millisecond
)

var ErrUnknownEvent = errors.New("unknown event")

// PlaybackState is the complete state of a session
type PlaybackState struct {
	Index   int
	Elapsed int64 // centiseconds
	Paused  bool
	Done    bool

	// Start is when the current timer run began, shifted forward by time
	// spent paused. PausedAt is only meaningful while Paused.
	Start    time.Time
	PausedAt time.Time

	AutoAdvances uint64
}

// NewState returns the state of a session that starts running at now
func NewState(now time.Time) PlaybackState {
	return PlaybackState{
		Start:    now,
		PausedAt: now,
	}
}

// Running reports whether the timer is counting
func (s PlaybackState) Running() bool {
	return !s.Paused && !s.Done
}

// Apply returns the state that follows s after ev happened at now. The input
// state is never modified. A terminal state ignores further events.
func Apply(s PlaybackState, ev Event, set *models.ImageSet, now time.Time) (PlaybackState, error) {
	if s.Done {
		return s, nil
	}

	switch e := ev.(type) {
	case Next:
		s.Index = wrap(s.Index+1, set.Len())
		s.Elapsed = 0
	case Prev:
		s.Index = wrap(s.Index-1, set.Len())
		s.Elapsed = 0
	case Select:
		i, err := set.IndexOf(e.Name)
		if err != nil {
			return s, err
		}
		s.Index = i
		s.Elapsed = 0
	case TogglePause:
		if s.Paused {
			s.Start = s.Start.Add(now.Sub(s.PausedAt))
			s.Paused = false
		} else {
			s.Elapsed = centiseconds(now.Sub(s.Start))
			s.PausedAt = now
			s.Paused = true
		}
	case Reset:
		s = s.restarted(now)
	case Tick:
		if s.Paused {
			return s, nil
		}
		s.Elapsed = centiseconds(now.Sub(s.Start))
		if s.Elapsed > TimeoutThreshold {
			s.Index = wrap(s.Index+1, set.Len())
			s = s.restarted(now)
			s.AutoAdvances++
		}
	case Exit:
		s.Done = true
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}

	return s, nil
}

// restarted zeroes the timer and moves the session start to now. Only Reset
// and auto-advance restart; navigation clears the displayed elapsed time but
// keeps the deadline. PausedAt moves too, so a reset while paused resumes
// from zero.
func (s PlaybackState) restarted(now time.Time) PlaybackState {
	s.Elapsed = 0
	s.Start = now
	s.PausedAt = now
	return s
}

// wrap maps i into [0, n) in both directions
func wrap(i, n int) int {
	return (i%n + n) % n
}
