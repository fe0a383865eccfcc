// Package quick provides the property-driver core: turning a
// generator and a predicate into a Property, running it num_tests
// times against a splittable RNG, and — on the first failure —
// walking the failing rose tree down to a minimal counterexample.
//
// It also keeps the teacher library's value-comparison helper, since
// package-level test code still reaches for a go-cmp-backed Equal
// alongside property-based assertions.
package quick

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lucaskalb/rosetest/gen"
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// Equal compares two values of the same type and fails the test if
// they are not equal, using go-cmp for a readable diff.
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Outcome is a trial's pass/fail verdict: Passed is false whenever the
// predicate returned a non-nil error or panicked, in which case Err
// carries the reason (a *gen.PropertyException for a recovered panic).
type Outcome struct {
	Passed bool
	Err    error
}

// TrialResult is the payload a Property's rose tree carries at every
// node: the arguments that produced this node and the outcome of
// running the predicate against them.
type TrialResult[T any] struct {
	Args    T
	Outcome Outcome
}

// Property builds a Generator[TrialResult[T]] from an arguments
// generator and a predicate: every node of argsGen's shrink tree is
// mapped through the predicate, so the resulting tree's shape (what
// shrinks to what) is inherited entirely from argsGen. A panicking
// predicate is treated as a failing outcome whose Err is a
// *gen.PropertyException wrapping the recovered value, never as a
// Go panic escaping the driver.
func Property[T any](argsGen gen.Generator[T], predicate func(T) error) gen.Generator[TrialResult[T]] {
	return func(s rng.State, size int) rose.Tree[TrialResult[T]] {
		return rose.Map(func(a T) TrialResult[T] {
			return runPredicate(a, predicate)
		}, argsGen(s, size))
	}
}

func runPredicate[T any](a T, predicate func(T) error) (result TrialResult[T]) {
	result.Args = a
	defer func() {
		if r := recover(); r != nil {
			result.Outcome = Outcome{Passed: false, Err: &gen.PropertyException{Recovered: r}}
		}
	}()
	err := predicate(a)
	result.Outcome = Outcome{Passed: err == nil, Err: err}
	return
}

// EventType tags a Reporter callback's structured record.
type EventType string

const (
	EventTrial      EventType = "trial"
	EventFailure    EventType = "failure"
	EventShrinkStep EventType = "shrink_step"
)

// Event is the structured record passed to a Reporter. Only the
// fields relevant to Type are meaningful; the rest are zero.
type Event struct {
	Type        EventType
	SoFar       int
	NumTests    int
	TrialNumber int
	Result      error
	FailingArgs any
}

// Reporter observes a QuickCheck run. The zero Reporter (nil) is a
// no-op.
type Reporter func(Event)

func (r Reporter) emit(e Event) {
	if r != nil {
		r(e)
	}
}

// Options configures a QuickCheck run.
type Options struct {
	// Seed seeds the RNG; zero means "derive one from wall-clock time"
	// (and the derived seed is still reported, so the run can be
	// replayed exactly).
	Seed int64
	// MaxSize bounds the size knob fed to the property; it cycles
	// 0..MaxSize-1 across trials. Zero means 200.
	MaxSize int
	// Reporter receives trial/failure/shrink-step events as they
	// happen; nil means no observation.
	Reporter Reporter
}

func (o Options) effectiveSeed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}

func (o Options) effectiveMaxSize() int {
	if o.MaxSize <= 0 {
		return 200
	}
	return o.MaxSize
}

// ShrinkReport summarizes the shrink search described on QuickCheck:
// the total nodes visited, the depth reached, the final (still
// failing) outcome, and the smallest failing arguments found.
type ShrinkReport[T any] struct {
	TotalNodesVisited int
	Depth             int
	Result            error
	Smallest          T
}

// FinalReport is QuickCheck's result: Passed is true only when every
// trial passed. On failure, FailingSize/Fail describe the first
// failing trial before shrinking, and Shrunk describes the shrink
// search's outcome.
type FinalReport[T any] struct {
	Passed      bool
	Seed        int64
	NumTests    int
	FailingSize int
	Fail        T
	Shrunk      ShrinkReport[T]
}

// String renders a FinalReport the way a failing test wants to print
// it: compact on success, a replay-seed-carrying summary on failure.
func (r FinalReport[T]) String() string {
	if r.Passed {
		return fmt.Sprintf("OK, passed %d tests (seed=%d)", r.NumTests, r.Seed)
	}
	return fmt.Sprintf("Failed after %d tests (seed=%d, failing size=%d)\nshrunk to: %#v\nshrink result: %v\nvisited=%d depth=%d",
		r.NumTests, r.Seed, r.FailingSize, r.Shrunk.Smallest, r.Shrunk.Result, r.Shrunk.TotalNodesVisited, r.Shrunk.Depth)
}

// QuickCheck runs property (a Generator[TrialResult[T]] built with
// Property) for up to numTests trials, cycling size through
// 0..MaxSize-1. The first failing trial is shrunk via the exact
// non-backtracking depth-first walk documented on shrinkSearch, and
// the run returns immediately — QuickCheck never continues sampling
// once a counterexample is found, matching the single-threaded,
// first-failure-wins contract the core promises.
func QuickCheck[T any](numTests int, property gen.Generator[TrialResult[T]], opts Options) FinalReport[T] {
	seed := opts.effectiveSeed()
	maxSize := opts.effectiveMaxSize()
	reporter := opts.Reporter

	s := rng.Seed(seed)
	for i := 0; i < numTests; i++ {
		size := i % maxSize
		r1, r2 := rng.Split(s)
		s = r2

		tree := property(r1, size)
		res := tree.Root

		if res.Outcome.Passed {
			reporter.emit(Event{Type: EventTrial, SoFar: i + 1, NumTests: numTests})
			continue
		}

		reporter.emit(Event{Type: EventFailure, TrialNumber: i + 1, Result: res.Outcome.Err, FailingArgs: res.Args})
		shrunk := shrinkSearch(tree, reporter)
		return FinalReport[T]{
			Passed:      false,
			Seed:        seed,
			NumTests:    i + 1,
			FailingSize: size,
			Fail:        res.Args,
			Shrunk:      shrunk,
		}
	}
	return FinalReport[T]{Passed: true, Seed: seed, NumTests: numTests}
}

// shrinkSearch walks a failing trial's rose tree with a non-exhaustive,
// non-backtracking depth-first strategy: starting at the root's
// children, each node is tried in order; a passing node is simply
// skipped (never revisited), while a failing node becomes the new
// current-smallest and, if it has children, the search descends into
// them instead of continuing its siblings. This commits to the first
// deeper failure it finds — it is neither exhaustive nor a global
// minimum — and that specific traversal order is the contract
// downstream tests rely on, not an implementation detail.
func shrinkSearch[T any](tree rose.Tree[TrialResult[T]], reporter Reporter) ShrinkReport[T] {
	var nodes []rose.Tree[TrialResult[T]]
	if tree.Children != nil {
		nodes = tree.Children()
	}
	currentSmallest := tree.Root
	depth := 0
	visited := 0

	for len(nodes) > 0 {
		head := nodes[0]
		tail := nodes[1:]
		r := head.Root

		if r.Outcome.Passed {
			visited++
			nodes = tail
			continue
		}

		currentSmallest = r
		visited++
		reporter.emit(Event{Type: EventShrinkStep, Result: r.Outcome.Err, FailingArgs: r.Args})

		var kids []rose.Tree[TrialResult[T]]
		if head.Children != nil {
			kids = head.Children()
		}
		if len(kids) > 0 {
			nodes = kids
			depth++
		} else {
			nodes = tail
		}
	}

	return ShrinkReport[T]{
		TotalNodesVisited: visited,
		Depth:             depth,
		Result:            currentSmallest.Outcome.Err,
		Smallest:          currentSmallest.Args,
	}
}

// Generate draws a single sample from g at the given size, seeded
// from wall-clock time — for interactive exploration, not for
// anything that needs to replay.
func Generate[T any](g gen.Generator[T], size int) T {
	s := rng.Seed(time.Now().UnixNano())
	return g(s, size).Root
}

// Sample draws n samples from g with sizes increasing from 0 to n-1,
// the way a REPL user previews a generator's output range. n <= 0
// defaults to 10.
func Sample[T any](g gen.Generator[T], n int) []T {
	if n <= 0 {
		n = 10
	}
	s := rng.Seed(time.Now().UnixNano())
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		r1, r2 := rng.Split(s)
		s = r2
		out = append(out, g(r1, i).Root)
	}
	return out
}

// SampleSeq returns an infinite lazy sequence of samples from g, with
// size cycling through 0..maxSize-1. maxSize <= 0 defaults to 100.
// Callers control how many values they consume via range-over-func's
// usual early-break semantics.
func SampleSeq[T any](g gen.Generator[T], maxSize int) func(yield func(T) bool) {
	if maxSize <= 0 {
		maxSize = 100
	}
	return func(yield func(T) bool) {
		s := rng.Seed(time.Now().UnixNano())
		for i := 0; ; i++ {
			var v T
			var r1 rng.State
			r1, s = rng.Split(s)
			v = g(r1, i%maxSize).Root
			if !yield(v) {
				return
			}
		}
	}
}
