package executor

import "context"

// Inline runs each task synchronously inside Submit. It trades the
// parallelism of Pool for determinism; useful in tests and single-threaded
// runs.
type Inline[T any] struct{}

func NewInline[T any]() *Inline[T] {
	return &Inline[T]{}
}

func (e *Inline[T]) Submit(ctx context.Context, task Task[T]) (Handle[T], error) {
	h := newFuture[T]()

	result, err := task(ctx)
	h.resolve(result, err)

	return h, nil
}
