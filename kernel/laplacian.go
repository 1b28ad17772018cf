package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var _ Kernel[[]float64] = (*Laplacian)(nil)

// Laplacian is the kernel k(x, y) = exp(-||x - y|| / sigma).
type Laplacian struct {
	sigma float64
}

// NewLaplacian creates a Laplacian kernel with bandwidth sigma.
func NewLaplacian(sigma float64) *Laplacian {
	return &Laplacian{sigma: sigma}
}

func (k *Laplacian) Evaluate(a, b []float64) float64 {
	return math.Exp(-floats.Distance(a, b, 2) / k.sigma)
}

func (k *Laplacian) String() string {
	return fmt.Sprintf("Laplacian Kernel (sigma = %.4f)", k.sigma)
}
