package assert

import (
	"errors"
	"testing"
)

// Must panics with err if it's not nil.
// Use this to turn any predicate into a fail-fast check:
//
//	assert.Must(assert.True(ok, "config loaded"))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// That stops the test immediately if err is not nil, reporting the failure message without color codes.
func That(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		return
	}
	var f *Failure
	if errors.As(err, &f) {
		t.Fatal(f.Message())
	}
	t.Fatal(err)
}
