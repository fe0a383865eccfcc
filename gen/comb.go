// File: gen/comb.go
package gen

import (
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// -------------------------
// Basic helpers
// -------------------------

// Const always returns the same value, with no shrinking.
func Const[T any](v T) Generator[T] {
	return Pure(v)
}

// -------------------------
// Choice combinators
// -------------------------

// OneOf picks uniformly among gs and shrinks toward earlier indices
// (via the integer shrink on the chosen index) as well as within the
// chosen generator itself. OneOf([g]) behaves exactly like g.
func OneOf[T any](gs ...Generator[T]) Generator[T] {
	if len(gs) == 0 {
		panic(&InvalidArgumentError{Op: "OneOf", Msg: "needs at least one generator"})
	}
	if len(gs) == 1 {
		return gs[0]
	}
	idxGen := Choose(0, int64(len(gs)-1))
	return Bind(idxGen, func(idx int64) Generator[T] {
		return gs[idx]
	})
}

// Elements is sugar over OneOf: it picks uniformly among the given
// values (pure leaves, so the choice is all there is to shrink).
func Elements[T any](vs ...T) Generator[T] {
	if len(vs) == 0 {
		panic(&InvalidArgumentError{Op: "Elements", Msg: "needs at least one value"})
	}
	gs := make([]Generator[T], len(vs))
	for i, v := range vs {
		gs[i] = Pure(v)
	}
	return OneOf(gs...)
}

// WeightedChoice pairs a generator with its selection weight for
// Frequency.
type WeightedChoice[T any] struct {
	Weight int
	Gen    Generator[T]
}

// Frequency picks among ws with probability proportional to weight,
// by drawing a uniform int in [1, sum(weights)] and walking the list
// subtracting weights — so, since the integer shrink biases toward
// smaller indices into that walk, the chosen generator also shrinks
// toward the first (typically "simplest") entry in ws.
func Frequency[T any](ws ...WeightedChoice[T]) Generator[T] {
	if len(ws) == 0 {
		panic(&InvalidArgumentError{Op: "Frequency", Msg: "needs at least one weighted generator"})
	}
	total := 0
	for _, w := range ws {
		if w.Weight <= 0 {
			panic(&InvalidArgumentError{Op: "Frequency", Msg: "weights must be positive"})
		}
		total += w.Weight
	}
	return Bind(Choose(1, int64(total)), func(pick int64) Generator[T] {
		running := int64(0)
		for _, w := range ws {
			running += int64(w.Weight)
			if pick <= running {
				return w.Gen
			}
		}
		return ws[len(ws)-1].Gen
	})
}

// -------------------------
// Filtering
// -------------------------

// SuchThat repeatedly draws from g until pred holds, increasing size
// by 1 on every failed attempt (to escape a saturated small sample
// space) and re-splitting the RNG. It exhausts after maxTries (10 if
// maxTries <= 0) with a SuchThatExhaustedError. The returned tree is
// g's tree filtered by pred, so shrinking can never produce a value
// pred rejects.
func SuchThat[T any](pred func(T) bool, g Generator[T], maxTries int) Generator[T] {
	if maxTries <= 0 {
		maxTries = 10
	}
	return func(s rng.State, size int) rose.Tree[T] {
		cur := s
		for attempt := 0; attempt < maxTries; attempt++ {
			r1, r2 := rng.Split(cur)
			cur = r2
			t := g(r1, size+attempt)
			if pred(t.Root) {
				return rose.Filter(pred, t)
			}
		}
		panic(&SuchThatExhaustedError{Op: "SuchThat", MaxTries: maxTries})
	}
}

// Filter is an alias for SuchThat kept for callers used to the
// teacher library's naming; maxTries defaults to 10 when <= 0.
func Filter[T any](g Generator[T], pred func(T) bool, maxTries int) Generator[T] {
	return SuchThat(pred, g, maxTries)
}

// -------------------------
// Tuples
// -------------------------

// Tuple2 splits the RNG across two generators and zips their trees,
// so each slot shrinks independently.
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[[2]any] {
	return func(s rng.State, size int) rose.Tree[[2]any] {
		ss := rng.SplitN(s, 2)
		ta := Map(ga, func(a A) any { return a })(ss[0], size)
		tb := Map(gb, func(b B) any { return b })(ss[1], size)
		return rose.Zip(func(xs []any) [2]any { return [2]any{xs[0], xs[1]} }, []rose.Tree[any]{ta, tb})
	}
}

// Tuple runs each generator against its own split of the RNG and
// zips the resulting trees into a fixed-length []any, shrinking each
// position independently. For typed pairs/triples, prefer Bind2/Bind3
// or a dedicated Map over the result.
func Tuple(gs ...Generator[any]) Generator[[]any] {
	return func(s rng.State, size int) rose.Tree[[]any] {
		ss := rng.SplitN(s, len(gs))
		ts := make([]rose.Tree[any], len(gs))
		for i, g := range gs {
			ts[i] = g(ss[i], size)
		}
		return rose.Zip(func(xs []any) []any { return xs }, ts)
	}
}
