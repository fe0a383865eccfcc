package gen

import (
	"github.com/lucaskalb/rosetest/rng"
	"github.com/lucaskalb/rosetest/rose"
)

// Bool generates booleans uniformly and shrinks true toward false —
// false is the smaller counterexample by convention.
func Bool() Generator[bool] {
	return func(s rng.State, _ int) rose.Tree[bool] {
		_, d := rng.RandDouble(s)
		v := d < 0.5
		return rose.Make(v, func() []rose.Tree[bool] {
			if !v {
				return nil
			}
			return []rose.Tree[bool]{rose.Pure(false)}
		})
	}
}
