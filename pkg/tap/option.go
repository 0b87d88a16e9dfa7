package tap

// Option is a two-armed present/absent container.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the payload and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// MustGet returns the payload or panics on the absent arm.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("tap: MustGet on None")
	}
	return o.value
}

// Or returns the payload if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// TapSome invokes f with mutable access to the payload and returns the
// option. On the absent arm f is not invoked and the option passes
// through unchanged.
func (o Option[T]) TapSome(f func(*T)) Option[T] {
	if o.present {
		f(&o.value)
	}
	return o
}

// TapNone invokes f on the absent arm, which carries no payload, and
// returns the option. On the present arm f is not invoked.
func (o Option[T]) TapNone(f func()) Option[T] {
	if !o.present {
		f()
	}
	return o
}
