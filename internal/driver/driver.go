// Package driver runs the slideshow loop: it owns the playback state, feeds
// it events, and hands each resulting frame to a renderer.
package driver

import (
	"context"
	"errors"
	"image"
	"time"

	"gesture-gallery/internal/logger"
	"gesture-gallery/internal/metrics"
	"gesture-gallery/internal/models"
	"gesture-gallery/internal/services"
	"gesture-gallery/internal/slideshow"
)

// Renderer puts a frame on screen. img is nil when no image in the set
// could be decoded.
type Renderer interface {
	Render(frame slideshow.Frame, img image.Image)
}

// Imager produces the fitted bitmap for a path
type Imager interface {
	Render(ctx context.Context, path string, box services.Box) (image.Image, error)
}

type Options struct {
	Box          services.Box
	Clock        slideshow.Clock
	PollInterval time.Duration
	Logger       logger.Logger
	Metrics      *metrics.Metrics
}

type Driver struct {
	set      *models.ImageSet
	images   Imager
	renderer Renderer

	box     services.Box
	clock   slideshow.Clock
	poll    time.Duration
	logger  logger.Logger
	metrics *metrics.Metrics

	events chan slideshow.Event
	done   chan struct{}

	state  slideshow.PlaybackState
	last   *slideshow.Frame
	broken map[string]bool
}

func New(set *models.ImageSet, images Imager, renderer Renderer, opts Options) *Driver {
	if opts.Clock == nil {
		opts.Clock = slideshow.SystemClock{}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = slideshow.PollInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.NoOpLogger{}
	}

	return &Driver{
		set:      set,
		images:   images,
		renderer: renderer,
		box:      opts.Box,
		clock:    opts.Clock,
		poll:     opts.PollInterval,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		events:   make(chan slideshow.Event, 64),
		done:     make(chan struct{}),
		broken:   make(map[string]bool),
	}
}

// Send queues an event for the loop. It never blocks once the loop has
// stopped.
func (d *Driver) Send(ev slideshow.Event) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

// Done is closed when Run returns
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// State returns the playback state. Only safe to call after Run returned.
func (d *Driver) State() slideshow.PlaybackState {
	return d.state
}

// Run processes events until Exit arrives or ctx is cancelled. A running
// slideshow waits at most one poll interval for input and ticks when none
// came; a paused one waits for input indefinitely.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)

	d.state = slideshow.NewState(d.clock.Now())
	d.logger.Info("Driver", "slideshow started", map[string]interface{}{
		"images":        d.set.Len(),
		"box":           d.box.String(),
		"timeout_cs":    slideshow.TimeoutThreshold,
		"poll_interval": d.poll.String(),
	})
	d.render(ctx, slideshow.Next{})

	poll := time.NewTimer(d.poll)
	defer poll.Stop()

	for {
		var ev slideshow.Event
		var ok bool
		if d.state.Paused {
			ev, ok = d.awaitEvent(ctx)
		} else {
			ev, ok = d.pollEvent(ctx, poll)
		}
		if !ok {
			d.logger.Info("Driver", "slideshow cancelled", nil)
			return ctx.Err()
		}

		prev := d.state
		next, err := slideshow.Apply(prev, ev, d.set, d.clock.Now())
		if err != nil {
			d.logger.Warning("Driver", "event rejected", map[string]interface{}{
				"event": ev.String(),
				"error": err.Error(),
			})
			continue
		}
		d.state = next

		if next.Done {
			d.logger.Info("Driver", "slideshow finished", map[string]interface{}{
				"index":         next.Index,
				"auto_advances": next.AutoAdvances,
			})
			return nil
		}

		if next.AutoAdvances > prev.AutoAdvances {
			d.count(func(m *metrics.Metrics) { m.AutoAdvances.Inc() })
			d.logger.Debug("Driver", "auto-advanced", map[string]interface{}{
				"index": next.Index,
			})
		}

		d.render(ctx, skipDirection(ev))
	}
}

// pollEvent is the running mode: input or a tick, whichever comes first
func (d *Driver) pollEvent(ctx context.Context, poll *time.Timer) (slideshow.Event, bool) {
	poll.Reset(d.poll)

	select {
	case <-ctx.Done():
		return nil, false
	case ev := <-d.events:
		return ev, true
	case <-poll.C:
		return slideshow.Tick{}, true
	}
}

// awaitEvent is the paused mode: nothing changes until input arrives
func (d *Driver) awaitEvent(ctx context.Context) (slideshow.Event, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case ev := <-d.events:
		return ev, true
	}
}

// render shows the current frame unless it is already on screen. Images that
// fail to decode are skipped by applying skip; when every image is broken the
// frame is shown without a bitmap.
func (d *Driver) render(ctx context.Context, skip slideshow.Event) {
	frame := slideshow.FrameOf(d.state, d.set)
	if d.last != nil && *d.last == frame {
		return
	}

	img, err := d.loadSkippingBroken(ctx, skip)
	if err != nil && !errors.Is(err, errNothingDecodable) {
		if ctx.Err() != nil {
			return
		}
		d.logger.Error("Driver", err, map[string]interface{}{
			"path": frame.Path,
		})
	}

	frame = slideshow.FrameOf(d.state, d.set)
	d.renderer.Render(frame, img)
	d.last = &frame
	d.count(func(m *metrics.Metrics) { m.FramesRendered.Inc() })
}

var errNothingDecodable = errors.New("no image in the set could be decoded")

func (d *Driver) loadSkippingBroken(ctx context.Context, skip slideshow.Event) (image.Image, error) {
	for attempts := 0; attempts < d.set.Len(); attempts++ {
		path := d.set.Path(d.state.Index)

		if !d.broken[path] {
			img, err := d.images.Render(ctx, path, d.box)
			if err == nil {
				return img, nil
			}
			if !errors.Is(err, services.ErrDecode) {
				return nil, err
			}

			d.broken[path] = true
			d.count(func(m *metrics.Metrics) { m.DecodeErrors.Inc() })
			d.logger.Warning("Driver", "skipping unreadable image", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}

		if len(d.broken) == d.set.Len() {
			break
		}
		d.state, _ = slideshow.Apply(d.state, skip, d.set, d.clock.Now())
	}

	return nil, errNothingDecodable
}

// skipDirection keeps moving the way the user was going: backwards after
// Prev, forwards after anything else
func skipDirection(ev slideshow.Event) slideshow.Event {
	if _, ok := ev.(slideshow.Prev); ok {
		return slideshow.Prev{}
	}
	return slideshow.Next{}
}

func (d *Driver) count(fn func(m *metrics.Metrics)) {
	if d.metrics != nil {
		fn(d.metrics)
	}
}
