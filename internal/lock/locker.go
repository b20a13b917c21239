// Package lock serializes scans of the same badge.
package lock

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotAcquired = errors.New("lock not acquired")

// Locker hands out exclusive locks by key. The returned unlock func must be
// called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// MemoryLocker is a per-key mutex for a single process.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*entry)}
}

func (l *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, e)
		return nil, errors.Join(ErrNotAcquired, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.release(key, e)
		})
	}, nil
}

func (l *MemoryLocker) release(key string, e *entry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()
}

// WithTimeout bounds how long Lock waits on the inner locker.
func WithTimeout(inner Locker, timeout time.Duration) Locker {
	return timeoutLocker{inner: inner, timeout: timeout}
}

type timeoutLocker struct {
	inner   Locker
	timeout time.Duration
}

func (t timeoutLocker) Lock(ctx context.Context, key string) (func(), error) {
	if t.timeout <= 0 {
		return t.inner.Lock(ctx, key)
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Lock(ctx, key)
}
