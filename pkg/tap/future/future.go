package future

import (
	"context"
	"sync"
)

// State is the current resolution of a Future.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Future is a single-assignment cell: it starts pending and resolves
// at most once, to ready with a value or to failed with an error.
type Future[T any] struct {
	mu    sync.Mutex
	state State
	value T
	err   error
	done  chan struct{}
}

func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Ready returns a future already resolved with v.
func Ready[T any](v T) *Future[T] {
	f := New[T]()
	f.Complete(v)
	return f
}

// Failed returns a future already resolved with err.
func Failed[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Go runs fn in its own goroutine and returns a future that resolves
// with its outcome. Context cancellation is fn's concern; Go itself
// does not watch ctx.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := New[T]()
	go func() {
		v, err := fn(ctx)
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()
	return f
}

// Complete resolves the future with v. It reports false if the future
// was already resolved; the first resolution wins.
func (f *Future[T]) Complete(v T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePending {
		return false
	}
	f.value = v
	f.state = StateReady
	close(f.done)
	return true
}

// Fail resolves the future with err. It reports false if the future
// was already resolved.
func (f *Future[T]) Fail(err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StatePending {
		return false
	}
	f.err = err
	f.state = StateFailed
	close(f.done)
	return true
}

// State returns the current resolution.
func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Poll returns the value or error without blocking. resolved is false
// while the future is pending.
func (f *Future[T]) Poll() (v T, err error, resolved bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err, f.state != StatePending
}

// Await blocks until the future resolves or ctx is done. On
// cancellation it returns ctx.Err(); the future itself stays pending.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TapReady invokes f with a copy of the value if the future is ready,
// and returns the same future. Pending and failed futures pass through
// untouched.
func (f *Future[T]) TapReady(fn func(T)) *Future[T] {
	f.mu.Lock()
	ready := f.state == StateReady
	v := f.value
	f.mu.Unlock()

	if ready {
		fn(v)
	}
	return f
}

// TapPending invokes f if the future has not resolved yet, and returns
// the same future without blocking.
func (f *Future[T]) TapPending(fn func()) *Future[T] {
	f.mu.Lock()
	pending := f.state == StatePending
	f.mu.Unlock()

	if pending {
		fn()
	}
	return f
}

// TapFailed invokes f with the error if the future has failed, and
// returns the same future.
func (f *Future[T]) TapFailed(fn func(error)) *Future[T] {
	f.mu.Lock()
	failed := f.state == StateFailed
	err := f.err
	f.mu.Unlock()

	if failed {
		fn(err)
	}
	return f
}
