package gen

import (
	"testing"

	"github.com/lucaskalb/rosetest/rng"
)

func concatContainer(g Generator[[]int]) Generator[[]int] {
	return Map(Tuple2(g, g), func(p [2]any) []int {
		a := p[0].([]int)
		b := p[1].([]int)
		out := append([]int(nil), a...)
		return append(out, b...)
	})
}

func TestRecursiveIsDeterministicPerSeed(t *testing.T) {
	g := Recursive(concatContainer, Pure([]int{1}))
	a := g(rng.Seed(13), 20).Root
	b := g(rng.Seed(13), 20).Root
	if len(a) != len(b) {
		t.Fatalf("Recursive was not reproducible: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Recursive was not reproducible: %v vs %v", a, b)
		}
	}
}

func TestRecursiveBoundsGrowthAgainstSize(t *testing.T) {
	g := Recursive(concatContainer, Pure([]int{1}))
	for seed := int64(0); seed < 20; seed++ {
		small := g(rng.Seed(seed), 1).Root
		if len(small) > 64 {
			t.Fatalf("Recursive at size 1 produced an unreasonably large leaf count: %d", len(small))
		}
	}
}

func TestRecursiveCanProduceTheScalarCaseDirectly(t *testing.T) {
	g := Recursive(concatContainer, Pure([]int{1}))
	sawScalar := false
	for seed := int64(0); seed < 100; seed++ {
		v := g(rng.Seed(seed), 2).Root
		if len(v) == 1 {
			sawScalar = true
			break
		}
	}
	if !sawScalar {
		t.Fatalf("Recursive never returned the bare scalar case across 100 seeds")
	}
}
