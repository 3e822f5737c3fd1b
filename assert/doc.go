/*
Package assert provides predicates for expressing test expectations in a user-friendly way.

Every predicate takes the subject(s) under test and a caller-supplied message.
A predicate returns nil when the expectation holds, and a [*Failure] otherwise.
The failure text is the caller's message followed by a diagnostic describing the expected and actual state, for example:

	err := assert.Equals(3, len(items), "item count")
	// item count Expected: 3, but was: 2

There are a few patterns that are supported:
  - Returning failures as errors, so they compose with [errors.Is] and [errors.As] using [ErrFailed].
  - Failing fast, with [Must] to panic or [That] to stop a test.
  - Collecting many possible failures into one with a [Collector].

Failure text is colored red when stderr is a terminal.
The NO_COLOR and TESTKIT_COLOR environment variables override that decision, and [DisableColor] and [EnableColor] can change it at runtime.
*/
package assert
