package gen

import (
	"testing"

	"github.com/lucaskalb/rosetest/rng"
)

func TestUintRangeStaysInBounds(t *testing.T) {
	g := UintRange(5, 10)
	for seed := int64(0); seed < 30; seed++ {
		v := g(rng.Seed(seed), 10).Root
		if v < 5 || v > 10 {
			t.Fatalf("UintRange(5,10) produced %d", v)
		}
	}
}

func TestUintDefaultsAboveZero(t *testing.T) {
	g := Uint(Size{})
	for seed := int64(0); seed < 30; seed++ {
		v := g(rng.Seed(seed), 20).Root
		if v > uint(20)*2+1 {
			t.Fatalf("Uint at size 20 produced %d, out of expected window", v)
		}
	}
}

func TestUintExplicitRangeOverridesSize(t *testing.T) {
	g := Uint(Size{Min: 100, Max: 200})
	for seed := int64(0); seed < 30; seed++ {
		v := g(rng.Seed(seed), 1).Root
		if v < 100 || v > 200 {
			t.Fatalf("Uint(100,200) produced %d", v)
		}
	}
}
