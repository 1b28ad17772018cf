package kernel

import "gonum.org/v1/gonum/floats"

var _ Kernel[[]float64] = Linear{}

// Linear is the dot-product kernel k(x, y) = <x, y>.
type Linear struct{}

func (Linear) Evaluate(a, b []float64) float64 {
	return floats.Dot(a, b)
}

func (Linear) String() string { return "Linear Kernel" }
