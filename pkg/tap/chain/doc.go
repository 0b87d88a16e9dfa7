// Package chain provides a fluent wrapper around tap.Result[T]
// for inserting taps into a synchronous pipeline of steps.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Tap/TapFailure/TapResult: side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Tap operations pass the chain's context into the closure and always
// hand the result through untouched; Then/ThenTry/Map short-circuit
// once the chain is on the failure arm.
package chain
