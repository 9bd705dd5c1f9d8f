package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is a fixed-window limiter backed by an in-process map.
// Suitable for single-instance deployments only; use the redis store
// when running more than one replica.
type MemoryLimiter struct {
	window time.Duration
	limit  int

	mu      sync.Mutex
	windows map[string]*window

	done      chan struct{}
	closeOnce sync.Once
}

type window struct {
	start time.Time
	count int
}

// NewMemoryLimiter creates an in-memory fixed-window limiter
func NewMemoryLimiter(windowSize time.Duration, limit int) *MemoryLimiter {
	l := &MemoryLimiter{
		window:  windowSize,
		limit:   limit,
		windows: make(map[string]*window),
		done:    make(chan struct{}),
	}
	go l.cleanupStaleEntries()
	return l
}

// Allow records a request for key and reports whether it fits in the
// current window.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[key]
	if !exists || now.Sub(w.start) >= l.window {
		l.windows[key] = &window{start: now, count: 1}
		return true, 0, nil
	}

	if w.count < l.limit {
		w.count++
		return true, 0, nil
	}

	retryAfter := l.window - now.Sub(w.start)
	return false, retryAfter, nil
}

// Close stops the background cleanup goroutine
func (l *MemoryLimiter) Close() error {
	l.closeOnce.Do(func() { close(l.done) })
	return nil
}

func (l *MemoryLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := time.Now().Add(-l.window)
			for key, w := range l.windows {
				if w.start.Before(cutoff) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
