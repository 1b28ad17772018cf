package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var _ Kernel[[]float64] = (*Gaussian)(nil)

// Gaussian is the radial basis function kernel
// k(x, y) = exp(-||x - y||^2 / (2 sigma^2)).
type Gaussian struct {
	sigma float64
	gamma float64
}

// NewGaussian creates a Gaussian kernel with bandwidth sigma.
func NewGaussian(sigma float64) *Gaussian {
	return &Gaussian{sigma: sigma, gamma: 1 / (2 * sigma * sigma)}
}

func (k *Gaussian) Evaluate(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return math.Exp(-k.gamma * d * d)
}

func (k *Gaussian) String() string {
	return fmt.Sprintf("Gaussian Kernel (sigma = %.4f)", k.sigma)
}
