// Package future provides a deferred-computation container with taps
// on its three resolutions: ready, pending, and failed.
//
// Unlike the mutable taps in package tap, future taps are read-only:
// the payload still belongs to the future until the caller awaits it,
// so closures receive copies, never pointers into the cell. Taps never
// block; on a pending future only TapPending fires and the call
// returns immediately.
//
// Importing this package is opt-in; consumers that do not use deferred
// computations do not pay for it.
package future
