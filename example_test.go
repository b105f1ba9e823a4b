package rpn_test

import (
	"fmt"

	rpn "github.com/chucktilbury/shunting-yard"
)

func Example() {
	store := rpn.NewStore()
	ctx := rpn.NewContext(rpn.WithStore(store))
	for _, src := range []string{"x = 5", "x + 1", "2 ^ 3 ^ 2"} {
		p, err := rpn.ConvertString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		r, err := ctx.Eval(p)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s -> %0.3f\n", p, r)
	}

	// Output:
	// x 5 = -> 5.000
	// x 1 + -> 6.000
	// 2 3 2 ^ ^ -> 512.000
}
