package executor

import (
	"context"
	"fmt"
)

var ExecutorClosedErr = fmt.Errorf("executor is closed")
var NonPositiveWorkersErr = fmt.Errorf("max workers must be positive")

// Task is one unit of independent work submitted to an executor.
type Task[T any] func(ctx context.Context) (T, error)

// Handle is a future for one submitted task. It resolves exactly once, with
// either a result or an error.
type Handle[T any] interface {
	// Done is closed once the task has completed.
	Done() <-chan struct{}

	// Get blocks until the task has completed and returns its result or
	// failure.
	Get(ctx context.Context) (T, error)
}

// Executor accepts units of work without blocking and hands back a waitable
// handle per submission. How the work is scheduled is up to the
// implementation.
type Executor[T any] interface {
	Submit(ctx context.Context, task Task[T]) (Handle[T], error)
}

// future is the handle implementation shared by the in-process executors.
type future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

func newFuture[T any]() *future[T] {
	return &future[T]{
		done: make(chan struct{}),
	}
}

func (f *future[T]) resolve(result T, err error) {
	f.result = result
	f.err = err
	close(f.done)
}

func (f *future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("future.Get: %w", ctx.Err())
	}
}

// WaitAll blocks until every handle has resolved, with either a result or a
// failure. It does not read results; callers collect them afterwards in
// whatever order they recorded the submissions.
func WaitAll[T any](ctx context.Context, handles []Handle[T]) error {
	for i, h := range handles {
		select {
		case <-h.Done():
		case <-ctx.Done():
			return fmt.Errorf("WaitAll: handle %v of %v: %w", i, len(handles), ctx.Err())
		}
	}

	return nil
}
