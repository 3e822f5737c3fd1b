package assert

import (
	"errors"
	"strings"
)

// Collector collects the results of many predicates so they can be reported together.
// Each predicate still halts its own check; the Collector just keeps going to the next one.
//
// A Collector is itself an error, so it can be returned directly and compared with [errors.Is] or [errors.As].
//
// Note that a Collector is not concurrency safe.
type Collector struct {
	errs    []error
	joinStr string
}

// CollectErrors creates a new Collector, optionally with a join string that differs from the default of "\n".
func CollectErrors(joinString ...string) *Collector {
	joinStr := "\n"
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Collector{
		joinStr: joinStr,
	}
}

// Add adds the result of a predicate to the Collector.
// Nil results will not be included.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// Failures returns the collected [*Failure] values, skipping any other kind of error.
func (c *Collector) Failures() []*Failure {
	var failures []*Failure
	for _, err := range c.errs {
		var f *Failure
		if errors.As(err, &f) {
			failures = append(failures, f)
		}
	}
	return failures
}

// Result will return nil if no errors have been added to the Collector.
// Otherwise, it will return itself.
//
// This is provided because returning an empty Collector is still returning a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

// Message joins the collected messages without console color codes.
func (c *Collector) Message() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString(c.joinStr)
		}
		var f *Failure
		if errors.As(err, &f) {
			buf.WriteString(f.Message())
			continue
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Error satisfies the error interface.
func (c *Collector) Error() string {
	return colorize(c.Message())
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any error in the Collector.
func (c *Collector) Unwrap() []error {
	return c.errs
}
