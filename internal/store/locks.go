package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLockTimeout is returned when a path lock cannot be acquired within the
// configured wait. Callers treat it as a transient failure.
var ErrLockTimeout = errors.New("timed out acquiring path lock")

const defaultLockWait = 5 * time.Second

// pathLocks hands out one mutex per file path. Locks are created on first
// use and dropped again once nobody holds or waits for them, so the index
// stays proportional to in-flight operations rather than store size.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*pathLock
	wait  time.Duration
}

type pathLock struct {
	ch   chan struct{} // capacity 1; holding the token means holding the lock
	refs int
}

func newPathLocks(wait time.Duration) *pathLocks {
	if wait <= 0 {
		wait = defaultLockWait
	}
	return &pathLocks{
		locks: make(map[string]*pathLock),
		wait:  wait,
	}
}

// acquire blocks until the lock for path is held, the wait bound elapses, or
// ctx is done. On success the returned release function must be called
// exactly once.
func (l *pathLocks) acquire(ctx context.Context, path string) (func(), error) {
	l.mu.Lock()
	pl, ok := l.locks[path]
	if !ok {
		pl = &pathLock{ch: make(chan struct{}, 1)}
		l.locks[path] = pl
	}
	pl.refs++
	l.mu.Unlock()

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case pl.ch <- struct{}{}:
		return func() {
			<-pl.ch
			l.unref(path, pl)
		}, nil
	case <-timer.C:
		l.unref(path, pl)
		return nil, ErrLockTimeout
	case <-ctx.Done():
		l.unref(path, pl)
		return nil, ctx.Err()
	}
}

func (l *pathLocks) unref(path string, pl *pathLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pl.refs--
	if pl.refs == 0 {
		delete(l.locks, path)
	}
}
