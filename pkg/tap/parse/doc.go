// Package parse provides a three-armed partial-parse result with taps
// on each outcome: done, error, and incomplete.
//
// Done carries the unparsed rest of the input together with the parsed
// output; Error carries a recoverable parse error; Incomplete carries
// how much more input is needed. All three taps grant mutable access,
// matching the container they came from, and none of them changes the
// arm of the result.
//
// Importing this package is opt-in; consumers that do not deal with
// parser results do not pay for it.
package parse
