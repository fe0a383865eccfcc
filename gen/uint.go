package gen

// Uint generates a uint scaled by size, defaulting to [0, 2*size+1]
// the way Int centers its signed range on 0 (unsigned has no sign to
// mirror, so the whole range sits above 0). size.Min/Max pin an
// explicit range instead.
func Uint(size Size) Generator[uint] {
	return Map(Sized(func(n int) Generator[int64] {
		lo, hi := int64(0), int64(n)*2+1
		if size.Min != 0 || size.Max != 0 {
			lo, hi = int64(size.Min), int64(size.Max)
		}
		if lo < 0 {
			lo = 0
		}
		return Choose(lo, hi)
	}), func(v int64) uint { return uint(v) })
}

// UintRange generates a uint uniformly in [lo, hi], ignoring size.
func UintRange(lo, hi uint) Generator[uint] {
	return Map(Choose(int64(lo), int64(hi)), func(v int64) uint { return uint(v) })
}
