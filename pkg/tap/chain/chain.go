package chain

import (
	"context"

	"github.com/ib-77/tap3/pkg/tap"
)

type Chain[T any] struct {
	ctx context.Context
	res tap.Result[T]
}

func Start[T any](ctx context.Context, r tap.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, tap.Success(v))
}

func (c Chain[T]) Result() tap.Result[T] {
	return c.res
}

// Then composes functions that already return tap.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) tap.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	u, err := try(c.ctx, c.res.Result())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: tap.Fail[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: tap.Success(u)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: tap.Success(onSuccess(c.ctx, c.res.Result()))}
}

// Tap invokes f with mutable access to the successful value and keeps
// chaining. On the failure arm f is not invoked.
func (c Chain[T]) Tap(f func(ctx context.Context, t *T)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.TapSuccess(func(t *T) {
		f(c.ctx, t)
	})}
}

// TapFailure invokes f with mutable access to the error and keeps
// chaining. On the success arm f is not invoked.
func (c Chain[T]) TapFailure(f func(ctx context.Context, err *error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.TapFailure(func(err *error) {
		f(c.ctx, err)
	})}
}

// TapResult invokes f with the whole result regardless of arm and keeps
// chaining.
func (c Chain[T]) TapResult(f func(ctx context.Context, r tap.Result[T])) Chain[T] {
	f(c.ctx, c.res)
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(
	onSuccess func(ctx context.Context, t T) T,
	onFailure func(ctx context.Context, err error) T,
) T {
	if c.res.IsFailure() {
		return onFailure(c.ctx, c.res.Err())
	}
	return onSuccess(c.ctx, c.res.Result())
}
