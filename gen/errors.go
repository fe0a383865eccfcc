package gen

import "fmt"

// SuchThatExhaustedError is raised when SuchThat, or a distinct
// collection generator built on the same retry loop, fails to satisfy
// its predicate within the configured number of tries. It is fatal
// for the run: callers should surface it as a test-setup error, not a
// counterexample, and the driver never catches it on the property's
// behalf.
type SuchThatExhaustedError struct {
	Op       string // the combinator that exhausted its tries: "SuchThat", or "distinct" for the distinct collections
	MaxTries int
}

func (e *SuchThatExhaustedError) Error() string {
	return fmt.Sprintf("gen: %s exhausted %d tries without satisfying its predicate", e.Op, e.MaxTries)
}

// InvalidArgumentError flags a combinator misuse caught eagerly at
// construction time, e.g. OneOf with no generators or Frequency with
// a non-positive weight.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("gen: invalid argument to %s: %s", e.Op, e.Msg)
}

// PropertyException wraps a panic recovered from a user predicate. It
// is not a Go error path in the usual sense: quick.Property catches
// the panic and carries the recovered value here so it can flow
// through the trial's Outcome.Err as any other "failing" outcome, and
// so a final report can show what the property actually panicked with.
type PropertyException struct {
	Recovered any
}

func (e *PropertyException) Error() string {
	return fmt.Sprintf("gen: property panicked: %v", e.Recovered)
}
