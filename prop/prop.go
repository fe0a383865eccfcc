// Package prop provides the go test integration layer for
// property-based testing: ForAll runs a generator's values (and, on
// failure, its shrink tree) through sub-tests of the caller's *testing.T,
// so a failing property reads like any other failing Go test.
package prop

import (
	"flag"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lucaskalb/rosetest/gen"
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// Config holds the configuration for property-based testing.
type Config struct {
	// Seed is the random seed used for test case generation.
	// If zero, a random seed will be generated based on the current time.
	Seed int64

	// Examples is the number of test cases to generate and run.
	Examples int

	// MaxSize bounds the size knob fed to the generator; it cycles
	// 0..MaxSize-1 across examples. Zero means 200.
	MaxSize int

	// MaxShrink is the maximum number of shrink candidates to try
	// when a counterexample is found.
	MaxShrink int

	// StopOnFirstFailure determines whether to stop testing
	// after the first failing test case is found.
	StopOnFirstFailure bool

	// Parallelism specifies the number of parallel workers to use
	// for running test cases. Must be at least 1.
	Parallelism int
}

var (
	// flagSeed sets the random seed for test case generation.
	// Default: 0 (random seed based on current time).
	flagSeed = flag.Int64("rosetest.seed", 0, "Random seed for test case generation")

	// flagExamples sets the number of test cases to generate.
	// Default: 100.
	flagExamples = flag.Int("rosetest.examples", 100, "Number of test cases to generate")

	// flagMaxSize sets the size ceiling fed to generators.
	// Default: 200.
	flagMaxSize = flag.Int("rosetest.maxsize", 200, "Maximum size knob fed to generators")

	// flagMaxShrink sets the maximum number of shrink candidates tried.
	// Default: 400.
	flagMaxShrink = flag.Int("rosetest.maxshrink", 400, "Maximum number of shrink candidates to try")

	// flagParallelism sets the number of parallel workers.
	// Default: 1.
	flagParallelism = flag.Int("rosetest.parallel", 1, "Number of parallel workers")
)

// Default returns a Config with default values based on command-line flags.
// This is the recommended way to create a configuration for property-based testing.
func Default() Config {
	return Config{
		Seed:               *flagSeed,
		Examples:           *flagExamples,
		MaxSize:            *flagMaxSize,
		MaxShrink:          *flagMaxShrink,
		StopOnFirstFailure: true,
		Parallelism:        *flagParallelism,
	}
}

// effectiveSeed returns the effective seed to use for random number generation.
// If the configured seed is zero, it returns a random seed based on the current time.
func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c Config) effectiveMaxSize() int {
	if c.MaxSize <= 0 {
		return 200
	}
	return c.MaxSize
}

// ForAll creates a property-based test that generates test cases using
// the provided generator and runs them against the given test body. It
// returns a function that takes the test body as a parameter.
//
// The test generates cfg.Examples test cases; each is run as a t.Run
// sub-test. If one fails, ForAll walks the failing value's shrink tree
// — also via t.Run sub-tests, so a shrink candidate's own failures
// surface exactly like any other test failure — using the same
// non-backtracking depth-first search package quick's driver uses, up
// to cfg.MaxShrink candidates.
//
// Example usage:
//
//	ForAll(t, prop.Default(), gen.Int(gen.Size{}))(func(t *testing.T, x int) {
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		seed := cfg.effectiveSeed()

		t.Logf("[rosetest] seed=%d examples=%d maxsize=%d maxshrink=%d parallelism=%d",
			seed, cfg.Examples, cfg.effectiveMaxSize(), cfg.MaxShrink, cfg.Parallelism)

		if cfg.Parallelism <= 1 {
			runSequential(t, cfg, g, body, seed)
		} else {
			runParallel(t, cfg, g, body, seed)
		}
	}
}

// runSequential executes property-based tests sequentially (single-threaded).
// It generates test cases one by one and runs them against the test function.
// If a test fails, it attempts to shrink the counterexample.
func runSequential[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), seed int64) {
	maxSize := cfg.effectiveMaxSize()
	s := rng.Seed(seed)

	for i := 0; i < cfg.Examples; i++ {
		r1, r2 := rng.Split(s)
		s = r2
		size := i % maxSize
		tree := g(r1, size)

		name := fmt.Sprintf("ex#%d", i+1)
		passed := t.Run(name, func(st *testing.T) { body(st, tree.Root) })
		if passed {
			continue
		}

		min, steps := shrinkWithBody(t, name, tree, cfg.MaxShrink, body)
		full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), name)
		t.Errorf("[rosetest] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
			"counterexample (min): %#v\nreplay: go test -run '%s' -rosetest.seed=%d",
			seed, i+1, steps, min, full, seed)

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// runParallel executes property-based tests across cfg.Parallelism
// workers, each pulling test indices off a shared channel. Every
// example is generated from its own RNG split (split_n off the run's
// base state) so workers never contend on shared RNG state. Each
// worker shrinks every failing example it runs, and failures are
// reported in the order they arrive, which is not necessarily
// trial-index order; with StopOnFirstFailure only the first arrival
// is reported.
func runParallel[T any](t *testing.T, cfg Config, g gen.Generator[T], body func(*testing.T, T), seed int64) {
	maxSize := cfg.effectiveMaxSize()
	base := rng.Seed(seed)
	splits := rng.SplitN(base, cfg.Examples)

	testChan := make(chan int, cfg.Examples)
	for i := 0; i < cfg.Examples; i++ {
		testChan <- i
	}
	close(testChan)

	var wg sync.WaitGroup
	failureChan := make(chan failureResult, cfg.Examples)

	for w := 0; w < cfg.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range testChan {
				tree := g(splits[i], i%maxSize)
				name := fmt.Sprintf("ex#%d", i+1)

				passed := t.Run(name, func(st *testing.T) { body(st, tree.Root) })
				if passed {
					continue
				}

				min, steps := shrinkWithBody(t, name, tree, cfg.MaxShrink, body)
				failureChan <- failureResult{testIndex: i, name: name, min: min, steps: steps}

				if cfg.StopOnFirstFailure {
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(failureChan)
	}()

	for failure := range failureChan {
		full := fmt.Sprintf("^%s$/%s(/|$)", t.Name(), failure.name)
		t.Errorf("[rosetest] property failed; seed=%d; examples_run=%d; shrunk_steps=%d\n"+
			"counterexample (min): %#v\nreplay: go test -run '%s' -rosetest.seed=%d",
			seed, failure.testIndex+1, failure.steps, failure.min, full, seed)

		if cfg.StopOnFirstFailure {
			return
		}
	}
}

// shrinkWithBody walks tree's children with the same non-backtracking
// depth-first strategy package quick's driver commits to (see
// quick.shrinkSearch): a node is tried via t.Run; a pass is skipped
// forever, a failure becomes the new minimum and, if it has children,
// the search descends into them instead of trying its siblings.
// Capped at maxShrink total candidates tried.
func shrinkWithBody[T any](t *testing.T, name string, tree rose.Tree[T], maxShrink int, body func(*testing.T, T)) (T, int) {
	min := tree.Root
	var nodes []rose.Tree[T]
	if tree.Children != nil {
		nodes = tree.Children()
	}

	steps := 0
	for len(nodes) > 0 && steps < maxShrink {
		head := nodes[0]
		tail := nodes[1:]
		steps++

		sname := fmt.Sprintf("%s/shrink#%d", name, steps)
		passed := t.Run(sname, func(st *testing.T) { body(st, head.Root) })
		if passed {
			nodes = tail
			continue
		}

		min = head.Root
		var kids []rose.Tree[T]
		if head.Children != nil {
			kids = head.Children()
		}
		if len(kids) > 0 {
			nodes = kids
		} else {
			nodes = tail
		}
	}
	return min, steps
}

// failureResult holds information about a failed test case after shrinking.
type failureResult struct {
	testIndex int
	name      string
	min       interface{}
	steps     int
}
