package rpn_test

import (
	"testing"

	rpn "github.com/chucktilbury/shunting-yard"
)

func FuzzConvert(f *testing.F) {
	f.Add("x")
	f.Add("a = 12 + 3 * (4 - 1)")
	f.Add("2 ^ 3 ^ 2")
	f.Add("not a and b != c")
	f.Fuzz(func(t *testing.T, s string) {
		rpn.ConvertString(s)
	})
}
