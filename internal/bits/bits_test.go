package bits

import "testing"

func TestReverseLowBitsIsSelfInverse(t *testing.T) {
	for _, n := range []int{1, 4, 8, 16, 52} {
		for _, x := range []uint64{0, 1, 0x5A5A, ^uint64(0)} {
			masked := x & ((uint64(1) << uint(n)) - 1)
			got := ReverseLowBits(ReverseLowBits(masked, n), n)
			if got != masked {
				t.Fatalf("ReverseLowBits(ReverseLowBits(x,%d),%d) = %d, want %d", n, n, got, masked)
			}
		}
	}
}

func TestReverseLowBitsZeroesHighBits(t *testing.T) {
	got := ReverseLowBits(0xFFFFFFFFFFFFFFFF, 4)
	if got > 0xF {
		t.Fatalf("ReverseLowBits with n=4 left bits set above bit 3: %#x", got)
	}
}

func TestReverseLowBitsNonPositiveNIsZero(t *testing.T) {
	if got := ReverseLowBits(123, 0); got != 0 {
		t.Fatalf("ReverseLowBits(123, 0) = %d, want 0", got)
	}
	if got := ReverseLowBits(123, -1); got != 0 {
		t.Fatalf("ReverseLowBits(123, -1) = %d, want 0", got)
	}
}

func TestReverseLowBitsReversesLowestBit(t *testing.T) {
	if got := ReverseLowBits(1, 1); got != 1 {
		t.Fatalf("ReverseLowBits(1,1) = %d, want 1", got)
	}
	if got := ReverseLowBits(0b10, 2); got != 0b01 {
		t.Fatalf("ReverseLowBits(0b10,2) = %b, want 0b01", got)
	}
}

func TestReflectIntoRangeTerminatesInBounds(t *testing.T) {
	cases := []struct{ v, lo, hi int64 }{
		{-5, 0, 100},
		{5000, 0, 100},
		{-1 << 40, -10, 10},
		{1 << 40, -10, 10},
		{50, 0, 100},
	}
	for _, c := range cases {
		got := ReflectIntoRange(c.v, c.lo, c.hi)
		if got < c.lo || got > c.hi {
			t.Fatalf("ReflectIntoRange(%d,%d,%d) = %d, out of bounds", c.v, c.lo, c.hi, got)
		}
	}
}

func TestReflectIntoRangeLeavesInBoundsValueUnchanged(t *testing.T) {
	if got := ReflectIntoRange(42, 0, 100); got != 42 {
		t.Fatalf("ReflectIntoRange(42,0,100) = %d, want 42 (already in range)", got)
	}
}
