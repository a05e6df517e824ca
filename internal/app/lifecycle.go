package app

import (
	"sync"

	"gesture-gallery/internal/logger"
)

// Lifecycle tracks the goroutines the application starts so shutdown can
// wait for them
type Lifecycle struct {
	logger     logger.Logger
	wg         sync.WaitGroup
	mu         sync.Mutex
	stopping   chan struct{}
	isShutdown bool
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		logger:   log,
		stopping: make(chan struct{}),
	}
}

// Go runs fn in a tracked goroutine. Nothing is started once Shutdown has
// begun.
func (l *Lifecycle) Go(name string, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.isShutdown {
		return
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		fn()
		l.logger.Debug("Lifecycle", "task finished", map[string]interface{}{
			"task": name,
		})
	}()
}

// Stopping is closed when Shutdown begins
func (l *Lifecycle) Stopping() <-chan struct{} {
	return l.stopping
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.isShutdown {
		l.mu.Unlock()
		return
	}
	l.isShutdown = true
	close(l.stopping)
	l.mu.Unlock()

	l.logger.Info("Lifecycle", "waiting for tasks", nil)
	l.wg.Wait()
	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
