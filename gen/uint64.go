package gen

// Uint64 generates a uint64 scaled by size; it is Uint without the
// final narrowing cast.
func Uint64(size Size) Generator[uint64] {
	return Map(Sized(func(n int) Generator[int64] {
		lo, hi := int64(0), int64(n)*2+1
		if size.Min != 0 || size.Max != 0 {
			lo, hi = int64(size.Min), int64(size.Max)
		}
		if lo < 0 {
			lo = 0
		}
		return Choose(lo, hi)
	}), func(v int64) uint64 { return uint64(v) })
}

// Uint64Range generates a uint64 uniformly in [lo, hi], ignoring size.
func Uint64Range(lo, hi uint64) Generator[uint64] {
	return Map(Choose(int64(lo), int64(hi)), func(v int64) uint64 { return uint64(v) })
}
