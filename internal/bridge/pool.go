// Package bridge runs pipeline work for synchronous callers on a bounded pool.
// Every task gets its own goroutine and context; nothing is shared between
// invocations.
package bridge

import (
	"context"
	"runtime/debug"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many tasks run at once.
type Pool struct {
	sem  *semaphore.Weighted
	size int64
}

// New creates a pool running at most maxConcurrent tasks.
func New(maxConcurrent int) (*Pool, error) {
	if maxConcurrent <= 0 {
		return nil, ErrInvalidSize
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
		size: int64(maxConcurrent),
	}, nil
}

// Size returns the pool capacity.
func (p *Pool) Size() int {
	return int(p.size)
}

type result[T any] struct {
	val T
	err error
}

// Do runs task on the pool and blocks until it finishes or ctx ends.
//
// The task receives a context that keeps ctx's values but not its
// cancellation, so a caller giving up does not abort in-flight network
// calls; their result is dropped. Waiting for a free slot honours ctx.
func Do[T any](ctx context.Context, p *Pool, task func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	taskCtx := context.WithoutCancel(ctx)
	done := make(chan result[T], 1)

	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				done <- result[T]{err: &PanicError{Value: r, Stack: debug.Stack()}}
			}
		}()

		val, err := task(taskCtx)
		done <- result[T]{val: val, err: err}
	}()

	select {
	case res := <-done:
		return res.val, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
