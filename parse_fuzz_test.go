package arith_test

import (
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("2*3+4*(4-5)+2^3/4")
	f.Add("(2)(3)")
	f.Add("-2^2")
	f.Add("3(2)")
	f.Add("1.2.3")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := arith.ParseString(s, arith.MaxDepth(500))
		if err != nil {
			return
		}
		// Parsed expressions never fail to evaluate.
		if _, err := a.Eval(); err != nil {
			t.Errorf("%q parsed as %v but failed to evaluate: %v", s, a, err)
		}
	})
}
