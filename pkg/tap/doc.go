// Package tap provides side-effect hooks for values and for the
// two-armed containers defined here.
//
// A tap takes a value, hands it to a closure for observation (and,
// where the container allows it, in-place mutation), and returns the
// same value so the surrounding expression keeps flowing. Taps never
// change which arm a container is in and never swallow a panic raised
// by the closure.
//
// Key operations:
// - Tap: generic tap for any value
// - Result[T].TapSuccess / TapFailure: success/failure container taps
// - Option[T].TapSome / TapNone: present/absent container taps
//
// Taps for deferred computations and parser results live in the
// subpackages future and parse; importing them is opt-in.
package tap
