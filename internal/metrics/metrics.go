// Package metrics counts slideshow activity on a private Prometheus registry.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	FramesRendered prometheus.Counter
	AutoAdvances   prometheus.Counter
	DecodeErrors   prometheus.Counter
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_frames_rendered_total",
			Help: "Frames handed to the window",
		}),
		AutoAdvances: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_auto_advances_total",
			Help: "Images advanced because the timer ran out",
		}),
		DecodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_decode_errors_total",
			Help: "Images skipped because they could not be decoded",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_frame_cache_hits_total",
			Help: "Fitted frames served from memory",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_frame_cache_misses_total",
			Help: "Fitted frames decoded from disk",
		}),
	}

	m.registry.MustRegister(
		m.FramesRendered,
		m.AutoAdvances,
		m.DecodeErrors,
		m.CacheHits,
		m.CacheMisses,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
