package gen

import (
	"sort"

	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// defaultMaxTries bounds the draw-until-distinct loop shared by every
// distinct-collection constructor below.
const defaultMaxTries = 100

// distinctDraw runs the "draw one element at a time, keyed by keyFn;
// on a key collision bump size and retry" loop until it has n distinct
// elements or runs out of tries, returning the underlying rose trees
// (not yet shuffled or merged) so callers can decide ordering.
func distinctDraw[T any, K comparable](elem Generator[T], keyFn func(T) K, s rng.State, size, n, minElements int) []rose.Tree[T] {
	seenKeys := map[K]bool{}
	var trees []rose.Tree[T]
	cur := s
	attempts := 0
	curSize := size
	for len(trees) < n && attempts < defaultMaxTries {
		r1, r2 := rng.Split(cur)
		cur = r2
		t := elem(r1, curSize)
		k := keyFn(t.Root)
		if seenKeys[k] {
			curSize++
			attempts++
			continue
		}
		seenKeys[k] = true
		trees = append(trees, t)
		attempts++
	}
	if len(trees) < minElements {
		panic(&SuchThatExhaustedError{Op: "distinct", MaxTries: defaultMaxTries})
	}
	return trees
}

// DistinctBy generates a []T whose target length is uniform in
// [size.Min, size.Max] (in [0, driver size] when both are zero), each
// element distinct under keyFn, via the
// draw/retry-on-collision loop described in distinctDraw, shuffled so
// element order is uniform, and finished with rose.Shrink so shrinking
// can drop or shrink elements in place — filtered by keyFn-distinctness
// so a shrink can never reintroduce a duplicate key.
func DistinctBy[T any, K comparable](elem Generator[T], keyFn func(T) K, size Size) Generator[[]T] {
	return func(s rng.State, driverSize int) rose.Tree[[]T] {
		lo, hi := size.Min, size.Max
		if lo == 0 && hi == 0 {
			hi = driverSize
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
		trees := distinctDraw(elem, keyFn, r2, driverSize, n, lo)
		trees = shuffleTrees(r2, trees)
		t := rose.Shrink(collectSlice[T], trees)
		return rose.Filter(func(v []T) bool { return isDistinctBy(v, keyFn) }, t)
	}
}

// Distinct is DistinctBy keyed by comparable equality on T itself.
func Distinct[T comparable](elem Generator[T], size Size) Generator[[]T] {
	return DistinctBy(elem, func(v T) T { return v }, size)
}

// SetOf generates a map[T]struct{} (Go's idiomatic set) of distinct
// elements drawn via Distinct.
func SetOf[T comparable](elem Generator[T], size Size) Generator[map[T]struct{}] {
	return Map(Distinct(elem, size), func(vs []T) map[T]struct{} {
		out := make(map[T]struct{}, len(vs))
		for _, v := range vs {
			out[v] = struct{}{}
		}
		return out
	})
}

// SortedSetOf generates a sorted, duplicate-free []T: it draws a
// Distinct vector, then sorts with less, which makes element ordering
// deterministic (the "shuffle then sort" combination is redundant for
// the final value, but keeps the same distinct-draw code path shared
// with SetOf rather than a bespoke generator).
func SortedSetOf[T comparable](elem Generator[T], less func(a, b T) bool, size Size) Generator[[]T] {
	return Map(Distinct(elem, size), func(vs []T) []T {
		out := append([]T(nil), vs...)
		sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
		return out
	})
}

// MapOf generates a map[K]V by drawing distinct keys (via DistinctBy
// on a (K,V) pair keyed by its K component) and collecting them.
func MapOf[K comparable, V any](keyGen Generator[K], valGen Generator[V], size Size) Generator[map[K]V] {
	type kv struct {
		K K
		V V
	}
	pair := Bind2(keyGen, func(K) Generator[V] { return valGen }, func(k K, v V) kv { return kv{K: k, V: v} })
	pairs := DistinctBy(pair, func(p kv) K { return p.K }, size)
	return Map(pairs, func(ps []kv) map[K]V {
		out := make(map[K]V, len(ps))
		for _, p := range ps {
			out[p.K] = p.V
		}
		return out
	})
}

func isDistinctBy[T any, K comparable](vs []T, keyFn func(T) K) bool {
	seen := make(map[K]bool, len(vs))
	for _, v := range vs {
		k := keyFn(v)
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}
