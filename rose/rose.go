// Package rose implements the rose-tree substrate generators use to
// carry a shrink strategy alongside the value they produced.
//
// A Tree pairs a realised Root with a Children thunk. The thunk is
// the laziness boundary: forcing Root never forces Children, and
// Children can be called more than once (each call recomputes the
// slice from the closure rather than consuming a one-shot stream).
// Because every Generator is a pure function of (rng.State, size),
// recomputation is referentially transparent, so there is no need for
// memoization to keep this cheap-looking API honest.
package rose

// Tree is a value paired with a lazily-produced sequence of strictly
// "smaller" variants. A nil Children means the tree is a leaf (no
// shrink candidates), not merely one whose children are empty.
type Tree[T any] struct {
	Root     T
	Children func() []Tree[T]
}

// Pure builds a leaf tree: just the value, nothing to shrink toward.
func Pure[T any](v T) Tree[T] {
	return Tree[T]{Root: v}
}

// Make builds a tree from an explicit root and children thunk.
func Make[T any](root T, children func() []Tree[T]) Tree[T] {
	return Tree[T]{Root: root, Children: children}
}

// kids forces one level of t's children, treating a nil thunk as "no
// children" rather than panicking.
func kids[T any](t Tree[T]) []Tree[T] {
	if t.Children == nil {
		return nil
	}
	return t.Children()
}

// Map applies f to the root and, lazily, to every descendant.
func Map[A, B any](f func(A) B, t Tree[A]) Tree[B] {
	out := Tree[B]{Root: f(t.Root)}
	if t.Children == nil {
		return out
	}
	out.Children = func() []Tree[B] {
		cs := t.Children()
		mapped := make([]Tree[B], len(cs))
		for i, c := range cs {
			mapped[i] = Map(f, c)
		}
		return mapped
	}
	return out
}

// Filter prunes child branches whose root fails pred, keeping the
// root itself untouched. Callers must ensure the root already
// satisfies pred; calling Filter on a tree whose root does not is
// undefined (the root is never re-checked).
func Filter[T any](pred func(T) bool, t Tree[T]) Tree[T] {
	out := Tree[T]{Root: t.Root}
	if t.Children == nil {
		return out
	}
	out.Children = func() []Tree[T] {
		cs := t.Children()
		kept := make([]Tree[T], 0, len(cs))
		for _, c := range cs {
			if pred(c.Root) {
				kept = append(kept, Filter(pred, c))
			}
		}
		return kept
	}
	return out
}

// Join collapses a tree-of-trees into a tree: the result's root is
// the root of the root, and its children are the outer children
// (each joined in turn) followed by the inner root's own children.
func Join[T any](t Tree[Tree[T]]) Tree[T] {
	inner := t.Root
	out := Tree[T]{Root: inner.Root}
	out.Children = func() []Tree[T] {
		var result []Tree[T]
		for _, oc := range kids(t) {
			result = append(result, Join(oc))
		}
		result = append(result, kids(inner)...)
		return result
	}
	return out
}

// roots extracts the Root of every tree in ts, in order.
func roots[T any](ts []Tree[T]) []T {
	out := make([]T, len(ts))
	for i, t := range ts {
		out[i] = t.Root
	}
	return out
}

// replaceAt returns a copy of ts with index i replaced by c.
func replaceAt[T any](ts []Tree[T], i int, c Tree[T]) []Tree[T] {
	out := make([]Tree[T], len(ts))
	copy(out, ts)
	out[i] = c
	return out
}

// Zip combines a fixed-length vector of trees with f. The root is
// f applied to every axis's root; children are produced by, for each
// axis i in order, substituting each child of tᵢ (in order) and
// re-zipping — no cross product between axes.
func Zip[T, R any](f func([]T) R, ts []Tree[T]) Tree[R] {
	out := Tree[R]{Root: f(roots(ts))}
	out.Children = func() []Tree[R] {
		var result []Tree[R]
		for i, t := range ts {
			for _, c := range kids(t) {
				result = append(result, Zip(f, replaceAt(ts, i, c)))
			}
		}
		return result
	}
	return out
}

// without returns a copy of ts with index i removed.
func without[T any](ts []Tree[T], i int) []Tree[T] {
	out := make([]Tree[T], 0, len(ts)-1)
	out = append(out, ts[:i]...)
	out = append(out, ts[i+1:]...)
	return out
}

// Shrink is Zip plus, for every position i, a variant that drops tᵢ
// entirely and applies f to the shorter list. It is the combinator
// collection generators use so that shrinking can both drop elements
// (removal variants, tried first) and shrink elements in place
// (Zip-style variants); both kinds of child recurse through Shrink
// again so further removals stay reachable from the result.
func Shrink[T, R any](f func([]T) R, ts []Tree[T]) Tree[R] {
	out := Tree[R]{Root: f(roots(ts))}
	out.Children = func() []Tree[R] {
		var result []Tree[R]
		for i := range ts {
			result = append(result, Shrink(f, without(ts, i)))
		}
		for i, t := range ts {
			for _, c := range kids(t) {
				result = append(result, Shrink(f, replaceAt(ts, i, c)))
			}
		}
		return result
	}
	return out
}

// Collapse lifts grandchildren one level: the new root is unchanged,
// and the new children are the original children followed by every
// grandchild, each of them collapsed in turn.
func Collapse[T any](t Tree[T]) Tree[T] {
	out := Tree[T]{Root: t.Root}
	out.Children = func() []Tree[T] {
		cs := kids(t)
		result := make([]Tree[T], 0, len(cs))
		for _, c := range cs {
			result = append(result, Collapse(c))
		}
		for _, c := range cs {
			for _, gc := range kids(c) {
				result = append(result, Collapse(gc))
			}
		}
		return result
	}
	return out
}
