package arith_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2-3")
	f.Add("2^3^2")
	f.Add("(1+2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := arith.EvalString(s, arith.MaxDepth(500))
		if err != nil && !math.IsNaN(r) {
			t.Errorf("%q gave result %g with error %v", s, r, err)
		}
	})
}
