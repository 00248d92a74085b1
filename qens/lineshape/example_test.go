package lineshape_test

import (
	"fmt"

	"github.com/cwbudde/algo-qens/qens/lineshape"
)

func ExampleGaussianAt() {
	a, _ := lineshape.GaussianAt(1, 1, 1, 1)
	b, _ := lineshape.GaussianAt(3, 2, 2, 5)
	fmt.Printf("%.3f %.3f\n", a, b)

	// Output:
	// 0.399 0.156
}

func ExampleLorentzian() {
	l, _ := lineshape.Lorentzian([]float64{1, 2, 3}, 1, 0, 1)
	fmt.Printf("%.3f %.3f %.3f\n", l[0], l[1], l[2])

	// Output:
	// 0.159 0.064 0.032
}

func ExampleDelta() {
	d := lineshape.Delta([]float64{-0.5, 0, 0.5, 1}, 1, 0.1)
	fmt.Println(d)

	// Output:
	// [0 2 0 0]
}
