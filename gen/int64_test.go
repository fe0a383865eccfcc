package gen

import (
	"testing"

	"github.com/lucaskalb/rosetest/rng"
)

func TestInt64RangeStaysInBounds(t *testing.T) {
	g := Int64Range(-1000, 1000)
	for seed := int64(0); seed < 30; seed++ {
		v := g(rng.Seed(seed), 10).Root
		if v < -1000 || v > 1000 {
			t.Fatalf("Int64Range(-1000,1000) produced %d", v)
		}
	}
}

func TestInt64ScalesWithSize(t *testing.T) {
	g := Int64(Size{})
	v := g(rng.Seed(1), 1).Root
	if v < -3 || v > 3 {
		t.Fatalf("Int64 at size 1 produced %d, expected a small magnitude", v)
	}
}
