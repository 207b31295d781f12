package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestPathLocks_AcquireRelease(t *testing.T) {
	l := newPathLocks(time.Second)

	release, err := l.acquire(context.Background(), "a.json")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	release()

	// Entry must be dropped once uncontended.
	l.mu.Lock()
	n := len(l.locks)
	l.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected empty lock index, have %d", n)
	}
}

func TestPathLocks_TimeoutWhenHeld(t *testing.T) {
	l := newPathLocks(30 * time.Millisecond)

	release, err := l.acquire(context.Background(), "a.json")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer release()

	if _, err := l.acquire(context.Background(), "a.json"); !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("expected ErrLockTimeout, got %v", err)
	}
}

func TestPathLocks_DistinctPathsDoNotBlock(t *testing.T) {
	l := newPathLocks(30 * time.Millisecond)

	releaseA, err := l.acquire(context.Background(), "a.json")
	if err != nil {
		t.Fatalf("acquire a: %v", err)
	}
	defer releaseA()

	releaseB, err := l.acquire(context.Background(), "b.json")
	if err != nil {
		t.Fatalf("acquire b must not contend with a: %v", err)
	}
	releaseB()
}

func TestPathLocks_ContextCancel(t *testing.T) {
	l := newPathLocks(time.Second)

	release, err := l.acquire(context.Background(), "a.json")
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if _, err := l.acquire(ctx, "a.json"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPathLocks_SerializesSamePath(t *testing.T) {
	l := newPathLocks(time.Second)

	var (
		mu     sync.Mutex
		inside int
		peak   int
		wg     sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.acquire(context.Background(), "same.json")
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			mu.Lock()
			inside++
			if inside > peak {
				peak = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	if peak != 1 {
		t.Fatalf("lock admitted %d holders at once", peak)
	}
}
