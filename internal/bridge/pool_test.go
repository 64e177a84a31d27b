package bridge

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type ctxKey struct{}

func TestDo_ReturnsResult(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := Do(context.Background(), p, func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Errorf("Do() = %q, %v", got, err)
	}

	wantErr := errors.New("boom")
	_, err = Do(context.Background(), p, func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Do() error = %v, want %v", err, wantErr)
	}
}

func TestDo_RecoversPanic(t *testing.T) {
	p, _ := New(1)

	_, err := Do(context.Background(), p, func(ctx context.Context) (int, error) {
		panic("kaboom")
	})
	if !errors.Is(err, ErrTaskPanicked) {
		t.Fatalf("Do() error = %v, want ErrTaskPanicked", err)
	}
	if got, want := err.Error(), "bridge: task panicked: kaboom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	var pe *PanicError
	if !errors.As(err, &pe) || len(pe.Stack) == 0 {
		t.Errorf("Do() error = %#v, want *PanicError with a stack", err)
	}

	// The slot must have been released.
	got, err := Do(context.Background(), p, func(ctx context.Context) (int, error) { return 7, nil })
	if err != nil || got != 7 {
		t.Errorf("pool unusable after panic: %d, %v", got, err)
	}
}

func TestDo_TaskContextIsDetached(t *testing.T) {
	p, _ := New(1)
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))

	started := make(chan struct{})
	finished := make(chan error, 1)

	go func() {
		_, err := Do(ctx, p, func(taskCtx context.Context) (struct{}, error) {
			close(started)
			if taskCtx.Value(ctxKey{}) != "req-1" {
				finished <- errors.New("context value lost")
				return struct{}{}, nil
			}
			time.Sleep(50 * time.Millisecond)
			finished <- taskCtx.Err()
			return struct{}{}, nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("caller error = %v, want context.Canceled", err)
		}
	}()

	<-started
	cancel()

	select {
	case err := <-finished:
		if err != nil {
			t.Errorf("task context was cancelled with caller: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("task did not finish")
	}
}

func TestDo_BoundsConcurrency(t *testing.T) {
	const size = 3
	p, _ := New(size)

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := Do(context.Background(), p, func(ctx context.Context) (int, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return i, nil
			})
			if err != nil || got != i {
				t.Errorf("task %d: got %d, %v", i, got, err)
			}
		}(i)
	}
	wg.Wait()

	if peak > size {
		t.Errorf("peak concurrency %d exceeds pool size %d", peak, size)
	}
}

func TestDo_AcquireHonoursContext(t *testing.T) {
	p, _ := New(1)
	release := make(chan struct{})

	go Do(context.Background(), p, func(ctx context.Context) (int, error) {
		<-release
		return 0, nil
	})
	defer close(release)

	// Give the first task time to take the only slot.
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var called atomic.Bool
	_, err := Do(ctx, p, func(ctx context.Context) (int, error) {
		called.Store(true)
		return 0, nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do() error = %v, want DeadlineExceeded", err)
	}
	if called.Load() {
		t.Error("task ran without a slot")
	}
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("New(0) error = %v, want ErrInvalidSize", err)
	}
}
