package executor

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool runs tasks on their own goroutines while a weighted semaphore bounds
// how many execute at once. Submit never blocks on the semaphore; queued
// tasks wait inside their goroutine until a slot frees up.
type Pool[T any] struct {
	sem    *semaphore.Weighted
	mutex  *sync.Mutex
	closed bool
}

func NewPool[T any](maxWorkers int) (*Pool[T], error) {
	if maxWorkers < 1 {
		return nil, fmt.Errorf("NewPool: maxWorkers=%v: %w", maxWorkers, NonPositiveWorkersErr)
	}

	return &Pool[T]{
		sem:   semaphore.NewWeighted(int64(maxWorkers)),
		mutex: &sync.Mutex{},
	}, nil
}

func (p *Pool[T]) Submit(ctx context.Context, task Task[T]) (Handle[T], error) {
	p.mutex.Lock()
	closed := p.closed
	p.mutex.Unlock()

	if closed {
		return nil, fmt.Errorf("Pool.Submit: %w", ExecutorClosedErr)
	}

	h := newFuture[T]()

	go func() {
		var result T

		if err := p.sem.Acquire(ctx, 1); err != nil {
			h.resolve(result, fmt.Errorf("Pool: failed to acquire worker slot: %w", err))
			return
		}
		defer p.sem.Release(1)

		defer func() {
			if r := recover(); r != nil {
				h.resolve(result, fmt.Errorf("Pool: task panicked: %v", r))
			}
		}()

		result, err := task(ctx)
		h.resolve(result, err)
	}()

	return h, nil
}

// Close rejects further submissions. Tasks already submitted run to
// completion; Close does not wait for them.
func (p *Pool[T]) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.closed = true
}
