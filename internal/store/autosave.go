package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultSaveInterval = 180 * time.Second
	defaultSaveRetry    = 60 * time.Second
	autosaveTimeout     = 30 * time.Second
)

// autosaver periodically persists the credentials in the background. A
// successful save schedules the next one at the steady interval; a failed
// save schedules a faster retry and keeps the short cadence until a save
// succeeds again.
type autosaver struct {
	save     func(context.Context) error
	interval time.Duration
	retry    time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func newAutosaver(save func(context.Context) error, interval, retry time.Duration, logger *slog.Logger) *autosaver {
	if interval <= 0 {
		interval = defaultSaveInterval
	}
	if retry <= 0 {
		retry = defaultSaveRetry
	}
	return &autosaver{
		save:     save,
		interval: interval,
		retry:    retry,
		log:      logger,
	}
}

// Start schedules the first background save. Calling Start on a stopped
// autosaver is a no-op.
func (a *autosaver) Start() {
	a.schedule(a.interval)
}

// Stop cancels any pending save. It does not flush; callers that need a
// final save perform it themselves.
func (a *autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// noteResult reschedules after a save performed elsewhere (an explicit
// Save call), so the cadence reflects the latest outcome.
func (a *autosaver) noteResult(err error) {
	if err != nil {
		a.schedule(a.retry)
		return
	}
	a.schedule(a.interval)
}

func (a *autosaver) schedule(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(d, a.run)
}

func (a *autosaver) run() {
	ctx, cancel := context.WithTimeout(context.Background(), autosaveTimeout)
	defer cancel()

	err := a.save(ctx)
	if err != nil {
		a.log.Warn("credential autosave failed", "error", err)
	}
	a.noteResult(err)
}
