package data_test

import (
	"fmt"

	"github.com/mercerml/mercer/data"
)

func ExampleFloat64_Preview() {
	c := data.NewFloat64("x", []float64{1, 2, 3, 4, 5})

	fmt.Println(c.Preview(3))
	fmt.Println(c.Preview(5))
	// Output:
	// [1.0, 2.0, 3.0, ... 2 more]
	// [1.0, 2.0, 3.0, 4.0, 5.0]
}
