package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMemoryLockerSerializesSameKey(t *testing.T) {
	l := NewMemoryLocker()
	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "user:1")
			if err != nil {
				t.Errorf("lock: %v", err)
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Fatalf("expected at most one holder, saw %d", maxInside)
	}
	if len(l.locks) != 0 {
		t.Fatalf("expected lock table to be empty, got %d entries", len(l.locks))
	}
}

func TestMemoryLockerDifferentKeysDoNotBlock(t *testing.T) {
	l := NewMemoryLocker()
	unlockA, err := l.Lock(context.Background(), "a")
	if err != nil {
		t.Fatalf("lock a: %v", err)
	}
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	unlockB, err := l.Lock(ctx, "b")
	if err != nil {
		t.Fatalf("lock b: %v", err)
	}
	unlockB()
}

func TestWithTimeoutGivesUp(t *testing.T) {
	l := NewMemoryLocker()
	unlock, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer unlock()

	_, err = WithTimeout(l, 20*time.Millisecond).Lock(context.Background(), "k")
	if !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("expected ErrNotAcquired, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded in chain, got %v", err)
	}
}

func TestUnlockIsIdempotent(t *testing.T) {
	l := NewMemoryLocker()
	unlock, err := l.Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	unlock()
	unlock()

	unlock2, err := WithTimeout(l, 50*time.Millisecond).Lock(context.Background(), "k")
	if err != nil {
		t.Fatalf("relock: %v", err)
	}
	unlock2()
}
