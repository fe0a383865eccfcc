package gen

import (
	"strings"
	"testing"

	"github.com/lucaskalb/rosetest/rng"
)

func TestCharFromStaysInAlphabet(t *testing.T) {
	g := CharFrom("abc")
	for seed := int64(0); seed < 30; seed++ {
		r := g(rng.Seed(seed), 10).Root
		if !strings.ContainsRune("abc", r) {
			t.Fatalf("CharFrom(\"abc\") produced %q", r)
		}
	}
}

func TestCharFromEmptyAlphabetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected CharFrom(\"\") to panic")
		}
	}()
	CharFrom("")
}

func TestStringRespectsSizeBounds(t *testing.T) {
	g := String(AlphabetLower, Size{Min: 2, Max: 6})
	for seed := int64(0); seed < 30; seed++ {
		s := g(rng.Seed(seed), 20).Root
		if len(s) < 2 || len(s) > 6 {
			t.Fatalf("String(2,6) produced length %d: %q", len(s), s)
		}
		for _, r := range s {
			if !strings.ContainsRune(AlphabetLower, r) {
				t.Fatalf("String used a rune outside its alphabet: %q in %q", r, s)
			}
		}
	}
}

func TestStringDefaultsAlphabetAndSize(t *testing.T) {
	g := String("", Size{})
	for seed := int64(0); seed < 10; seed++ {
		s := g(rng.Seed(seed), 50).Root
		if len(s) > 32 {
			t.Fatalf("String default produced length %d, want <= 32", len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(AlphabetAlphaNum, r) {
				t.Fatalf("String default used non-alphanumeric rune %q", r)
			}
		}
	}
}

func TestStringShrinksTowardEmpty(t *testing.T) {
	g := StringAlpha(Size{Min: 0, Max: 10})
	found := false
	for seed := int64(0); seed < 30; seed++ {
		tree := g(rng.Seed(seed), 20)
		if len(tree.Root) == 0 {
			continue
		}
		for _, c := range childrenOf(tree) {
			if len(c.Root) < len(tree.Root) {
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		t.Fatalf("String's shrink tree never produced a shorter child across 30 seeds")
	}
}
