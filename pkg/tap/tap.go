package tap

// Tap passes v to f by pointer and returns v afterwards, so a side
// effect can be slotted into the middle of an expression. f runs
// exactly once; any mutation it performs through the pointer is
// reflected in the returned value. A panic inside f propagates to the
// caller untouched.
func Tap[T any](v T, f func(*T)) T {
	f(&v)
	return v
}

// TapAll runs each f over v in order, each seeing the mutations of the
// previous one, and returns the final value.
func TapAll[T any](v T, fs ...func(*T)) T {
	for _, f := range fs {
		f(&v)
	}
	return v
}
