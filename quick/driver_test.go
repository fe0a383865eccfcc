package quick

import (
	"errors"
	"testing"

	"github.com/lucaskalb/rosetest/gen"
)

func TestQuickCheckPassesForTrueProperty(t *testing.T) {
	property := Property(gen.IntRange(-100, 100), func(x int) error {
		if x+0 != x {
			return errors.New("identity failed")
		}
		return nil
	})

	report := QuickCheck(100, property, Options{Seed: 1})
	if !report.Passed {
		t.Fatalf("expected property to pass, got failure: %v", report)
	}
	if report.NumTests != 100 {
		t.Fatalf("NumTests = %d, want 100", report.NumTests)
	}
}

func TestQuickCheckFindsFailure(t *testing.T) {
	property := Property(gen.IntRange(0, 1000), func(x int) error {
		if x > 10 {
			return errors.New("too big")
		}
		return nil
	})

	report := QuickCheck(200, property, Options{Seed: 42})
	if report.Passed {
		t.Fatalf("expected property to fail")
	}
	if report.Shrunk.Smallest > 11 {
		t.Fatalf("shrink search left a needlessly large counterexample: %d", report.Shrunk.Smallest)
	}
}

func TestQuickCheckDeterministicForSameSeed(t *testing.T) {
	property := func() gen.Generator[TrialResult[int]] {
		return Property(gen.IntRange(0, 1000), func(x int) error {
			if x > 10 {
				return errors.New("too big")
			}
			return nil
		})
	}

	r1 := QuickCheck(200, property(), Options{Seed: 7})
	r2 := QuickCheck(200, property(), Options{Seed: 7})

	if r1.Shrunk.Smallest != r2.Shrunk.Smallest {
		t.Fatalf("same seed gave different shrink results: %v vs %v", r1.Shrunk.Smallest, r2.Shrunk.Smallest)
	}
	if r1.NumTests != r2.NumTests {
		t.Fatalf("same seed gave different trial counts: %d vs %d", r1.NumTests, r2.NumTests)
	}
}

func TestQuickCheckReportsReplaySeed(t *testing.T) {
	property := Property(gen.IntRange(0, 1000), func(x int) error { return nil })
	report := QuickCheck(10, property, Options{Seed: 0})
	if report.Seed == 0 {
		t.Fatalf("expected a derived non-zero seed to be reported")
	}
}

func TestQuickCheckCatchesPanic(t *testing.T) {
	property := Property(gen.Const(1), func(int) error {
		panic("boom")
	})
	report := QuickCheck(1, property, Options{Seed: 3})
	if report.Passed {
		t.Fatalf("expected failure from panic")
	}
	var exc *gen.PropertyException
	if !errors.As(report.Shrunk.Result, &exc) {
		t.Fatalf("expected a *gen.PropertyException, got %v (%T)", report.Shrunk.Result, report.Shrunk.Result)
	}
}

func TestReporterReceivesEvents(t *testing.T) {
	var events []Event
	property := Property(gen.IntRange(0, 5), func(x int) error {
		if x > 2 {
			return errors.New("too big")
		}
		return nil
	})

	QuickCheck(50, property, Options{Seed: 9, Reporter: func(e Event) {
		events = append(events, e)
	}})

	var sawFailure bool
	for _, e := range events {
		if e.Type == EventFailure {
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Fatalf("expected at least one failure event, got %d events", len(events))
	}
}

func TestGenerateSampleSampleSeq(t *testing.T) {
	v := Generate(gen.IntRange(0, 10), 5)
	if v < 0 || v > 10 {
		t.Fatalf("Generate produced out-of-range value %d", v)
	}

	samples := Sample(gen.IntRange(0, 1000), 10)
	if len(samples) != 10 {
		t.Fatalf("Sample returned %d values, want 10", len(samples))
	}

	seq := SampleSeq(gen.IntRange(0, 1000), 50)
	count := 0
	for v := range seq {
		if v < 0 || v > 1000 {
			t.Fatalf("SampleSeq produced out-of-range value %d", v)
		}
		count++
		if count >= 20 {
			break
		}
	}
	if count != 20 {
		t.Fatalf("expected to consume 20 values, got %d", count)
	}
}
