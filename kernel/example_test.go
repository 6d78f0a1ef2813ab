package kernel_test

import (
	"fmt"

	"github.com/katalvlaran/kernelab/kernel"
)

// ExampleRegisterQuadratic registers the bandwidth-scaled kernel under
// "my_kernel", builds it by name and evaluates one pair.
func ExampleRegisterQuadratic() {
	r := kernel.NewRegistry()
	if err := kernel.RegisterQuadratic(r); err != nil {
		panic(err)
	}

	k, err := r.Create("my_kernel", kernel.Config{"bandwidth": "2."})
	if err != nil {
		panic(err)
	}
	v, _ := k.Evaluate([]float64{1, 0}, []float64{0, 0})
	g, _ := k.Gradient([]float64{1, 0}, []float64{1, 2})

	fmt.Println(v)
	fmt.Println(g)
	// Output:
	// 2
	// [2 4]
}
