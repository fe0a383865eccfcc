//go:build demo

// Package framework contains tests that verify the framework's behavior
// when properties fail intentionally. These tests ensure that the framework
// correctly handles failures, shrinking, and parallel execution paths.
package framework

import (
	"testing"

	"github.com/lucaskalb/rosetest/gen"
	"github.com/lucaskalb/rosetest/prop"
)

// TestForAll_SequentialFailureCodePath exercises the sequential failure
// path: a constant generator that always fails its predicate, so
// ForAll reports a failure with no shrink candidates to try.
func TestForAll_SequentialFailureCodePath(t *testing.T) {
	config := prop.Config{Seed: 12345, Examples: 1, MaxShrink: 2, Parallelism: 1}

	t.Run("failure_test", func(st *testing.T) {
		prop.ForAll(st, config, gen.Const(42))(func(t *testing.T, val int) {
			t.Errorf("this should fail: got %d", val)
		})
	})
}

// TestForAll_SequentialFailureWithShrinking exercises the sequential
// shrink path: the generator's shrink tree walks the value down toward
// 0, and every candidate still fails the predicate.
func TestForAll_SequentialFailureWithShrinking(t *testing.T) {
	config := prop.Config{Seed: 12345, Examples: 1, MaxShrink: 3, Parallelism: 1}

	prop.ForAll(t, config, gen.IntRange(0, 1000))(func(t *testing.T, val int) {
		t.Errorf("this should fail: got %d", val)
	})
}

// TestForAll_SequentialStopOnFirstFailureFalse exercises
// StopOnFirstFailure=false, which keeps running examples after the
// first failure instead of returning immediately.
func TestForAll_SequentialStopOnFirstFailureFalse(t *testing.T) {
	config := prop.Config{
		Seed: 12345, Examples: 3, MaxShrink: 2, Parallelism: 1,
		StopOnFirstFailure: false,
	}

	prop.ForAll(t, config, gen.Const(42))(func(t *testing.T, val int) {
		t.Errorf("this should fail: got %d", val)
	})
}
