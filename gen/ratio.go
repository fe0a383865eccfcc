package gen

import "math/big"

// Ratio generates a rational number: a numerator from Int and a
// non-zero denominator from Int (rejecting 0 via SuchThat), composed
// with math/big.Rat — Go's standard rational type, the natural target
// for spec's "a rational type must be provided" fallback clause, since
// Go ships one in the standard library rather than a third party.
// Shrinks on both numerator and denominator independently; big.Rat
// normalizes the result, so a shrunk pair may collapse to a simpler
// ratio than either component alone suggests.
func Ratio(size Size) Generator[*big.Rat] {
	num := Int(size)
	den := SuchThat(func(d int) bool { return d != 0 }, Int(size), 10)
	return Bind2(num, func(int) Generator[int] { return den }, func(n, d int) *big.Rat {
		return big.NewRat(int64(n), int64(d))
	})
}

// RatioRange is Ratio with both numerator and denominator drawn from
// IntRange(lo, hi), denominator excluding 0.
func RatioRange(lo, hi int) Generator[*big.Rat] {
	num := IntRange(lo, hi)
	den := SuchThat(func(d int) bool { return d != 0 }, IntRange(lo, hi), 10)
	return Bind2(num, func(int) Generator[int] { return den }, func(n, d int) *big.Rat {
		return big.NewRat(int64(n), int64(d))
	})
}
