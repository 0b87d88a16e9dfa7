package parse

// Needed tells how much more input an incomplete parse wants. The zero
// value means an unknown amount.
type Needed struct {
	size  int
	known bool
}

func NeedUnknown() Needed {
	return Needed{}
}

func NeedSize(n int) Needed {
	return Needed{size: n, known: true}
}

// Size returns the required size and whether it is known.
func (n Needed) Size() (int, bool) {
	return n.size, n.known
}

type arm int

const (
	armDone arm = iota
	armError
	armIncomplete
)

// Result is a three-armed parser outcome over input type I and output
// type O: done(rest, output), error(err), or incomplete(needed).
type Result[I, O any] struct {
	arm    arm
	rest   I
	output O
	err    error
	needed Needed
}

// Done returns a successful parse: out was produced, rest is the input
// left over.
func Done[I, O any](rest I, out O) Result[I, O] {
	return Result[I, O]{arm: armDone, rest: rest, output: out}
}

// Error returns a recoverable parse failure.
func Error[I, O any](err error) Result[I, O] {
	return Result[I, O]{arm: armError, err: err}
}

// Incomplete reports that the parser needs more input.
func Incomplete[I, O any](needed Needed) Result[I, O] {
	return Result[I, O]{arm: armIncomplete, needed: needed}
}

func (r Result[I, O]) IsDone() bool {
	return r.arm == armDone
}

func (r Result[I, O]) IsError() bool {
	return r.arm == armError
}

func (r Result[I, O]) IsIncomplete() bool {
	return r.arm == armIncomplete
}

func (r Result[I, O]) Rest() I {
	return r.rest
}

func (r Result[I, O]) Output() O {
	return r.output
}

func (r Result[I, O]) Err() error {
	return r.err
}

func (r Result[I, O]) Needed() Needed {
	return r.needed
}

// TapDone invokes f with mutable access to the leftover input and the
// parsed output, then returns the result. Other arms pass through
// untouched.
func (r Result[I, O]) TapDone(f func(rest *I, out *O)) Result[I, O] {
	if r.arm == armDone {
		f(&r.rest, &r.output)
	}
	return r
}

// TapError invokes f with mutable access to the parse error, then
// returns the result. Other arms pass through untouched.
func (r Result[I, O]) TapError(f func(*error)) Result[I, O] {
	if r.arm == armError {
		f(&r.err)
	}
	return r
}

// TapIncomplete invokes f with mutable access to the needed amount,
// then returns the result. Other arms pass through untouched.
func (r Result[I, O]) TapIncomplete(f func(*Needed)) Result[I, O] {
	if r.arm == armIncomplete {
		f(&r.needed)
	}
	return r
}
