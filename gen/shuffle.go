package gen

import (
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

type swapPair struct {
	I, J int
}

// Shuffle generates a permutation of coll by drawing a vector of
// (i, j) swap pairs — length uniform in [0, 2*len(coll)] — and
// folding each swap over a mutable copy. Fewer swaps means a result
// closer to the original order, so shrinking the swap vector (via
// Vector's rose.Shrink) shrinks the permutation toward coll itself.
func Shuffle[T any](coll []T) Generator[[]T] {
	n := len(coll)
	if n < 2 {
		return Pure(append([]T(nil), coll...))
	}
	idx := Bind2(IntRange(0, n-1), func(int) Generator[int] { return IntRange(0, n-1) }, func(i, j int) swapPair {
		return swapPair{I: i, J: j}
	})
	swaps := VectorRange(idx, 0, 2*n)
	return Map(swaps, func(ps []swapPair) []T {
		out := append([]T(nil), coll...)
		for _, p := range ps {
			out[p.I], out[p.J] = out[p.J], out[p.I]
		}
		return out
	})
}

// shuffleTrees permutes a slice of already-generated rose trees using
// the same swap-pair fold as Shuffle, splitting off its own RNG so the
// permutation draw doesn't consume randomness the caller's elements
// depend on. Used by the distinct-collection constructors in set.go to
// give ordered collections a uniform element ordering.
func shuffleTrees[T any](s rng.State, trees []rose.Tree[T]) []rose.Tree[T] {
	n := len(trees)
	if n < 2 {
		return trees
	}
	r1, _ := rng.Split(s)
	out := append([]rose.Tree[T](nil), trees...)
	cur := r1
	for i := 0; i < 2*n; i++ {
		var d float64
		cur, d = rng.RandDouble(cur)
		if d < 0.5 {
			continue
		}
		cur, ri := rng.RandLong(cur)
		a := int(uint64(ri) % uint64(n))
		cur, rj := rng.RandLong(cur)
		b := int(uint64(rj) % uint64(n))
		out[a], out[b] = out[b], out[a]
	}
	return out
}
