package gen

import (
	"math"
	"strings"
)

const symbolStartAlphabet = AlphabetAlpha + "*+!-_?"
const symbolRestAlphabet = symbolStartAlphabet + AlphabetDigits + "."

// Symbol generates a short identifier-shaped string: letters, digits
// and a handful of punctuation runes common in symbol syntax, scaled
// down by n^0.46 (per scale) so names stay short even at large sizes,
// and filtered via SuchThat to reject anything that would parse as a
// signed number (a leading '+' or '-' immediately followed by a digit).
func Symbol() Generator[string] {
	body := Scale(shrinkExponent, symbolBody)
	return SuchThat(func(s string) bool { return !looksLikeSignedNumber(s) }, body, 10)
}

// Keyword is Symbol prefixed with ':', matching the Lisp-family
// keyword syntax the spec borrows its symbol/keyword vocabulary from.
func Keyword() Generator[string] {
	return Map(Symbol(), func(s string) string { return ":" + s })
}

// NamespacedSymbol generates "ns/name", where both ns and name are
// built the same way as Symbol.
func NamespacedSymbol() Generator[string] {
	return Bind2(Symbol(), func(string) Generator[string] { return Symbol() }, func(ns, name string) string {
		return ns + "/" + name
	})
}

var symbolBody = Sized(func(n int) Generator[string] {
	if n < 1 {
		n = 1
	}
	if n > 16 {
		n = 16
	}
	return Bind(IntRange(1, n), func(length int) Generator[string] {
		return Bind(CharFrom(symbolStartAlphabet), func(first rune) Generator[string] {
			return Map(VectorOfN(CharFrom(symbolRestAlphabet), length-1), func(rest []rune) string {
				var b strings.Builder
				b.WriteRune(first)
				for _, r := range rest {
					b.WriteRune(r)
				}
				return b.String()
			})
		})
	})
})

func shrinkExponent(n int) int {
	if n <= 1 {
		return n
	}
	v := int(math.Floor(math.Pow(float64(n), 0.46)))
	if v < 1 {
		v = 1
	}
	return v
}

func looksLikeSignedNumber(s string) bool {
	if len(s) < 2 {
		return false
	}
	if s[0] != '+' && s[0] != '-' {
		return false
	}
	return s[1] >= '0' && s[1] <= '9'
}
