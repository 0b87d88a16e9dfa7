package tap

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-armed success/failure container. The id and creation
// time identify a result across taps: tapping returns a result with the
// same id, the same arm and the same payload identity.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// IsEmpty reports a zero Result that came from neither constructor.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

// TapSuccess invokes f with mutable access to the success payload and
// returns the result. On the failure arm f is not invoked and the
// result passes through unchanged.
func (r Result[T]) TapSuccess(f func(*T)) Result[T] {
	if r.isSuccess {
		f(&r.value)
	}
	return r
}

// TapFailure invokes f with mutable access to the error payload and
// returns the result. On the success arm f is not invoked and the
// result passes through unchanged.
func (r Result[T]) TapFailure(f func(*error)) Result[T] {
	if !r.isSuccess {
		f(&r.err)
	}
	return r
}
