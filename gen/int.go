// File: gen/int.go
package gen

import (
	"github.com/lucaskalb/rosetest/internal/bits"
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// Choose generates a uniform int64 in [lo, hi] (inclusive) and
// shrinks via "halves": from the target (0 if it's in range,
// otherwise the bound closest to 0), successive children approach
// the original value by repeatedly halving the remaining distance, so
// the first child tried is always the target itself and later
// children are closer to the generated value.
func Choose(lo, hi int64) Generator[int64] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(s rng.State, _ int) rose.Tree[int64] {
		_, d := rng.RandDouble(s)
		span := float64(hi-lo) + 1
		v := lo + int64(d*span)
		if v > hi {
			v = hi // overflow fallback: clamp rather than wrap
		}
		return intShrinkTree(v, shrinkTargetInt(lo, hi), lo, hi)
	}
}

// shrinkTargetInt returns the natural value to shrink toward: 0 if it
// lies in [lo, hi], otherwise whichever bound is closest to 0.
func shrinkTargetInt(lo, hi int64) int64 {
	if lo <= 0 && 0 <= hi {
		return 0
	}
	if lo > 0 {
		return lo
	}
	return hi
}

// intShrinkTree builds the halving shrink tree described on Choose.
// Every child is constructed by recursing with the same rule, so
// children's children are just intShrinkTree applied to a smaller
// diff — the tree is finite because diff strictly shrinks toward 0
// under repeated halving (integer division truncates toward zero).
func intShrinkTree(v, target, lo, hi int64) rose.Tree[int64] {
	return rose.Make(v, func() []rose.Tree[int64] {
		if v == target {
			return nil
		}
		diff := v - target
		var out []rose.Tree[int64]
		seen := map[int64]bool{v: true}
		for half := diff; half != 0; half /= 2 {
			cand := v - half
			if cand < lo || cand > hi || seen[cand] {
				continue
			}
			seen[cand] = true
			out = append(out, intShrinkTree(cand, target, lo, hi))
		}
		return out
	})
}

// Int generates an int scaled by size: the magnitude grows with the
// driver's size knob, centered on 0, the way spec.md's "primitive
// magnitudes... scale with size" convention describes. size.Min/Max,
// when non-zero, pin an explicit range instead.
func Int(size Size) Generator[int] {
	return Map(Sized(func(n int) Generator[int64] {
		lo, hi := intAutoRange(size, n)
		return Choose(lo, hi)
	}), func(v int64) int { return int(v) })
}

// IntRange generates an int uniformly in [lo, hi], ignoring size.
func IntRange(lo, hi int) Generator[int] {
	return Map(Choose(int64(lo), int64(hi)), func(v int64) int { return int(v) })
}

func intAutoRange(size Size, driverSize int) (int64, int64) {
	if size.Min != 0 || size.Max != 0 {
		lo, hi := int64(size.Min), int64(size.Max)
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi
	}
	m := int64(driverSize)*2 + 1
	if m == 0 {
		m = 1
	}
	return -m, m
}

// LargeInt generates an int64 in [lo, hi] with a strategy biased
// toward exercising the platform's full integer range at high sizes:
// it samples a bit count in [1, min(size, 64)], draws a raw 64-bit
// value, keeps only its top bit_count bits as a magnitude, and folds
// that magnitude back into [lo, hi] (see internal/bits.ReflectIntoRange).
// The result is wrapped in SuchThat so shrinking never escapes bounds
// even though the fold is a heuristic, not a bijection.
func LargeInt(lo, hi int64) Generator[int64] {
	if lo > hi {
		lo, hi = hi, lo
	}
	base := Generator[int64](func(s rng.State, size int) rose.Tree[int64] {
		maxBits := size
		if maxBits > 64 {
			maxBits = 64
		}
		if maxBits < 1 {
			maxBits = 1
		}
		s1, d := rng.RandDouble(s)
		bitCount := 1 + int(d*float64(maxBits))
		_, raw := rng.RandLong(s1)
		mag := int64(uint64(raw) >> uint(64-bitCount))
		v := bits.ReflectIntoRange(mag, lo, hi)
		return intShrinkTree(v, shrinkTargetInt(lo, hi), lo, hi)
	})
	return SuchThat(func(v int64) bool { return v >= lo && v <= hi }, base, 10)
}
