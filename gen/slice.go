package gen

import (
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// Vector generates a []T whose length is uniform in [0, size] and
// whose shrink tree (built with rose.Shrink) can both drop elements
// (shrinking length) and shrink elements in place.
func Vector[T any](elem Generator[T]) Generator[[]T] {
	return func(s rng.State, size int) rose.Tree[[]T] {
		return vectorTree(elem, s, size, 0, size)
	}
}

// List is Vector under another name: Go's only ordered sequence type
// is the slice, so "list" and "vector" coincide here.
func List[T any](elem Generator[T]) Generator[[]T] {
	return Vector(elem)
}

// VectorOfN generates a []T of exactly n elements. Its shrink tree is
// built with rose.Zip, not rose.Shrink, so length never changes —
// only element values shrink in place.
func VectorOfN[T any](elem Generator[T], n int) Generator[[]T] {
	return func(s rng.State, size int) rose.Tree[[]T] {
		return vectorTreeFixed(elem, s, size, n)
	}
}

// VectorRange generates a []T with length in [lo, hi] (inclusive);
// the rose.Shrink children that would drop below lo or above hi are
// filtered out, so shrinking never escapes the bound.
func VectorRange[T any](elem Generator[T], lo, hi int) Generator[[]T] {
	if hi < lo {
		hi = lo
	}
	return func(s rng.State, size int) rose.Tree[[]T] {
		t := vectorTree(elem, s, size, lo, hi)
		return rose.Filter(func(v []T) bool { return len(v) >= lo && len(v) <= hi }, t)
	}
}

// SliceOf is VectorRange with size.Min/size.Max as the length bounds,
// defaulting to [0, 16] when both are zero (the teacher library's
// historical default).
func SliceOf[T any](elem Generator[T], size Size) Generator[[]T] {
	lo, hi := size.Min, size.Max
	if lo == 0 && hi == 0 {
		hi = 16
	}
	return VectorRange(elem, lo, hi)
}

func vectorTree[T any](elem Generator[T], s rng.State, size, lo, hi int) rose.Tree[[]T] {
	if hi < lo {
		hi = lo
	}
	r1, r2 := rng.Split(s)
	n := lo
	if hi > lo {
		_, d := rng.RandDouble(r1)
		n += int(d * float64(hi-lo+1))
		if n > hi {
			n = hi
		}
	}
	if n <= 0 {
		return rose.Pure([]T{})
	}
	ss := rng.SplitN(r2, n)
	trees := make([]rose.Tree[T], n)
	for i := 0; i < n; i++ {
		trees[i] = elem(ss[i], size)
	}
	return rose.Shrink(collectSlice[T], trees)
}

func vectorTreeFixed[T any](elem Generator[T], s rng.State, size, n int) rose.Tree[[]T] {
	if n <= 0 {
		return rose.Pure([]T{})
	}
	ss := rng.SplitN(s, n)
	trees := make([]rose.Tree[T], n)
	for i := 0; i < n; i++ {
		trees[i] = elem(ss[i], size)
	}
	return rose.Zip(collectSlice[T], trees)
}

func collectSlice[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}
