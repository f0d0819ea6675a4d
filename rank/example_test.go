package rank_test

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/rank"
)

func ExampleData() {
	for _, m := range rank.Methods() {
		r, _ := rank.Data([]float64{3, 1, 1}, m)
		fmt.Println(m, r)
	}
	// Output:
	// average [3 1.5 1.5]
	// min [3 1 1]
	// max [3 2 2]
	// dense [2 1 1]
	// ordinal [3 1 2]
}
