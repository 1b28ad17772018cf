package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var _ Kernel[[]float64] = (*Polynomial)(nil)

// Polynomial is the kernel k(x, y) = (scale * <x, y> + offset)^degree.
type Polynomial struct {
	degree int
	scale  float64
	offset float64
}

// NewPolynomial creates a polynomial kernel of the given degree with
// scale 1 and offset 0.
func NewPolynomial(degree int) *Polynomial {
	return NewPolynomialWith(degree, 1, 0)
}

// NewPolynomialWith creates a polynomial kernel with explicit scale and
// offset.
func NewPolynomialWith(degree int, scale, offset float64) *Polynomial {
	return &Polynomial{degree: degree, scale: scale, offset: offset}
}

func (k *Polynomial) Evaluate(a, b []float64) float64 {
	return math.Pow(k.scale*floats.Dot(a, b)+k.offset, float64(k.degree))
}

func (k *Polynomial) String() string {
	return fmt.Sprintf("Polynomial Kernel (degree = %d, scale = %.4f, offset = %.4f)", k.degree, k.scale, k.offset)
}
