package gen

import (
	"math"

	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// Recursive builds a generator for a self-referential shape (trees,
// nested JSON-like values, expression ASTs) from a scalar generator
// and a containerGenFn that, given "the current generator", produces
// one that wraps it in a container. Left unchecked, naive recursion
// explodes container count exponentially in size; Recursive bounds
// total leaf count in probability instead:
//  1. sample max_leaf_count in [0, floor(size^1.1)];
//  2. pseudo-factor max_leaf_count into a sequence of factors (each >1,
//     running product <= max_leaf_count) by repeatedly drawing a
//     geometric-ish exponent against the remaining budget;
//  3. fold over the factors starting from resize(size, scalarGen): at
//     each step, with probability 1/11 stop folding and keep the
//     current generator as-is, otherwise wrap it via containerGenFn
//     resized to that step's factor.
func Recursive[T any](containerGenFn func(Generator[T]) Generator[T], scalarGen Generator[T]) Generator[T] {
	return func(s rng.State, size int) rose.Tree[T] {
		r1, r2 := rng.Split(s)
		maxLeaf := int(math.Floor(math.Pow(float64(size), 1.1)))
		factors, r3 := pseudoFactor(r1, maxLeaf)

		cur := Resize(size, scalarGen)
		curRng := r3
		for _, n := range factors {
			var d float64
			curRng, d = rng.RandDouble(curRng)
			if d < 1.0/11.0 {
				break
			}
			cur = Resize(n, containerGenFn(cur))
		}
		return cur(r2, size)
	}
}

// pseudoFactor breaks maxLeaf into a sequence of factors, each greater
// than 1, whose running product never exceeds maxLeaf: at every step
// it draws an exponent uniformly against the remaining budget's bit
// length (a geometric-ish distribution that favors small factors) and
// divides the budget by the resulting factor, stopping once the budget
// can no longer be factored further.
func pseudoFactor(s rng.State, maxLeaf int) ([]int, rng.State) {
	var factors []int
	remaining := maxLeaf
	cur := s
	for remaining > 1 {
		bitLen := bitLength(remaining)
		var d float64
		cur, d = rng.RandDouble(cur)
		exp := int(d * float64(bitLen))
		factor := 1 << uint(exp)
		if factor < 2 {
			factor = 2
		}
		if factor > remaining {
			factor = remaining
		}
		factors = append(factors, factor)
		remaining /= factor
	}
	return factors, cur
}

func bitLength(n int) int {
	b := 0
	for n > 0 {
		b++
		n >>= 1
	}
	if b == 0 {
		b = 1
	}
	return b
}
