package gen

import (
	"testing"

	"github.com/lucaskalb/rosetest/rng"
)

func TestVectorLengthBoundedBySize(t *testing.T) {
	g := Vector(IntRange(0, 9))
	for seed := int64(0); seed < 30; seed++ {
		tree := g(rng.Seed(seed), 8)
		if len(tree.Root) > 8 {
			t.Fatalf("Vector at size 8 produced length %d", len(tree.Root))
		}
	}
}

func TestVectorOfNIsFixedLength(t *testing.T) {
	g := VectorOfN(IntRange(0, 9), 5)
	for seed := int64(0); seed < 10; seed++ {
		tree := g(rng.Seed(seed), 8)
		if len(tree.Root) != 5 {
			t.Fatalf("VectorOfN(_, 5) produced length %d", len(tree.Root))
		}
		for _, c := range childrenOf(tree) {
			if len(c.Root) != 5 {
				t.Fatalf("VectorOfN shrink child changed length: %d", len(c.Root))
			}
		}
	}
}

func TestVectorRangeRespectsBounds(t *testing.T) {
	g := VectorRange(IntRange(0, 9), 3, 6)
	for seed := int64(0); seed < 30; seed++ {
		tree := g(rng.Seed(seed), 20)
		if len(tree.Root) < 3 || len(tree.Root) > 6 {
			t.Fatalf("VectorRange(3,6) produced length %d", len(tree.Root))
		}
		for _, c := range childrenOf(tree) {
			if len(c.Root) < 3 || len(c.Root) > 6 {
				t.Fatalf("VectorRange shrink child escaped bounds: length %d", len(c.Root))
			}
		}
	}
}

func TestSliceOfDefaultsToZeroSixteen(t *testing.T) {
	g := SliceOf(IntRange(0, 9), Size{})
	for seed := int64(0); seed < 20; seed++ {
		tree := g(rng.Seed(seed), 100)
		if len(tree.Root) > 16 {
			t.Fatalf("SliceOf default produced length %d, want <= 16", len(tree.Root))
		}
	}
}

func TestVectorShrinkCanDropElements(t *testing.T) {
	g := Vector(IntRange(0, 0))
	foundShorterChild := false
	for seed := int64(0); seed < 50 && !foundShorterChild; seed++ {
		tree := g(rng.Seed(seed), 8)
		if len(tree.Root) == 0 {
			continue
		}
		for _, c := range childrenOf(tree) {
			if len(c.Root) < len(tree.Root) {
				foundShorterChild = true
				break
			}
		}
	}
	if !foundShorterChild {
		t.Fatalf("Vector's shrink tree never dropped an element across 50 seeds")
	}
}
