// Package gen provides generators for property-based testing in Go.
// A Generator[T] is a pure function from (rng.State, size) to a
// rose.Tree[T]: the realised value plus its own lazily-built shrink
// strategy. Combinators compose generators by composing their rose
// trees (Map, Bind) so that any value built from primitives carries a
// shrink tree assembled from the same primitives' shrink trees — no
// combinator has to hand-write shrinking for the types it composes.
package gen

import (
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// Size controls the explicit bounds a caller wants a primitive
// generator to respect, overriding the size-scaled default. The zero
// value (Min=Max=0) means "no override, scale with the driver's size".
type Size struct {
	// Min is the minimum bound for generated values (or length, for
	// collection generators).
	Min int
	// Max is the maximum bound for generated values (or length).
	Max int
}

// Generator is the public contract for all generators: given a
// splittable RNG state and a size (the driver's 0..maxSize-1 knob,
// scaling magnitudes, lengths, and recursion depth by convention),
// produce a rose tree whose root is the value and whose children are
// strictly smaller variants. A Generator must be referentially
// transparent — the same (state, size) always yields an equal tree.
type Generator[T any] func(s rng.State, size int) rose.Tree[T]

// Pure ignores the RNG and size entirely and always yields the same
// leaf value, with no shrink candidates.
func Pure[T any](v T) Generator[T] {
	return func(rng.State, int) rose.Tree[T] {
		return rose.Pure(v)
	}
}

// Map applies f to the generated value and, lazily, to every node of
// its shrink tree.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return func(s rng.State, size int) rose.Tree[B] {
		return rose.Map(f, g(s, size))
	}
}

// Bind sequences generators: the generator for B is chosen once a
// value from A is known. The RNG is split into (r1, r2); g runs with
// r1, and k's result runs with the *same* r2 for every shrunk value of
// a (root and every descendant alike). Reusing r2 rather than
// re-splitting per candidate is what keeps downstream randomness
// stable while a shrinks — without it, every step of A's shrink would
// reroll B from scratch and shrinking would stop converging.
func Bind[A, B any](g Generator[A], k func(A) Generator[B]) Generator[B] {
	return func(s rng.State, size int) rose.Tree[B] {
		r1, r2 := rng.Split(s)
		outer := g(r1, size)
		treeOfTrees := rose.Map(func(a A) rose.Tree[B] {
			return k(a)(r2, size)
		}, outer)
		return rose.Join(treeOfTrees)
	}
}

// Sized defers generator construction until the size is known, the
// way a combinator like Vector needs to see size before it can decide
// a length.
func Sized[T any](f func(size int) Generator[T]) Generator[T] {
	return func(s rng.State, size int) rose.Tree[T] {
		return f(size)(s, size)
	}
}

// Resize overrides the size a generator sees, regardless of what the
// driver is currently feeding it.
func Resize[T any](n int, g Generator[T]) Generator[T] {
	return func(s rng.State, _ int) rose.Tree[T] {
		return g(s, n)
	}
}

// Scale rewrites the size via f before running g, e.g. to keep a
// composite generator's growth sub-linear in the driver's size.
func Scale[T any](f func(int) int, g Generator[T]) Generator[T] {
	return Sized(func(n int) Generator[T] {
		return Resize(f(n), g)
	})
}

// Let is sugar over Bind for the common "generate a, then a dependent
// b" shape; it exists so call sites that only ever need the final
// value can skip writing out a closure returning Generator[B].
func Let[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return Bind(g, f)
}

// Bind2 runs ga then, from its value, gb, and combines both with f.
// It is Bind plus a final Map, named for the "two dependent values"
// shape that composed generators reach for constantly.
func Bind2[A, B, C any](ga Generator[A], gb func(A) Generator[B], f func(A, B) C) Generator[C] {
	return Bind(ga, func(a A) Generator[C] {
		return Map(gb(a), func(b B) C { return f(a, b) })
	})
}

// Bind3 is Bind2 generalized to three dependent generators.
func Bind3[A, B, C, D any](ga Generator[A], gb func(A) Generator[B], gc func(A, B) Generator[C], f func(A, B, C) D) Generator[D] {
	return Bind(ga, func(a A) Generator[D] {
		return Bind2(gb(a), func(b B) Generator[C] { return gc(a, b) }, func(b B, c C) D {
			return f(a, b, c)
		})
	})
}
