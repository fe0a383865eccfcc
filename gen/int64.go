package gen

// Int64 generates an int64 scaled by size; it is Int without the
// final narrowing cast, for callers who need the full 64-bit type.
func Int64(size Size) Generator[int64] {
	return Sized(func(n int) Generator[int64] {
		lo, hi := intAutoRange(size, n)
		return Choose(lo, hi)
	})
}

// Int64Range generates an int64 uniformly in [lo, hi], ignoring size.
func Int64Range(lo, hi int64) Generator[int64] {
	return Choose(lo, hi)
}
