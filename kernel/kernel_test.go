package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	k := Linear{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, k.Evaluate(tt.a, tt.b))
		})
	}

	assert.Equal(t, "Linear Kernel", k.String())
}

func TestGaussian(t *testing.T) {
	// ||x - y||^2 = 8, sigma = 2, so k = exp(-8 / (2*4)) = exp(-1).
	k := NewGaussian(2)
	got := k.Evaluate([]float64{1, 2}, []float64{3, 4})
	assert.InDelta(t, math.Exp(-1), got, 1e-12)

	// Identical inputs have similarity 1.
	assert.InDelta(t, 1, k.Evaluate([]float64{1, 2}, []float64{1, 2}), 1e-12)

	assert.Equal(t, "Gaussian Kernel (sigma = 2.0000)", k.String())
}

func TestPolynomial(t *testing.T) {
	// (<x, y> + 1)^2 = (11 + 1)^2 = 144.
	k := NewPolynomialWith(2, 1, 1)
	assert.InDelta(t, 144, k.Evaluate([]float64{1, 2}, []float64{3, 4}), 1e-12)

	// Degree 1, scale 1, offset 0 reduces to the dot product.
	lin := NewPolynomial(1)
	assert.InDelta(t, 11, lin.Evaluate([]float64{1, 2}, []float64{3, 4}), 1e-12)

	assert.Equal(t, "Polynomial Kernel (degree = 2, scale = 1.0000, offset = 1.0000)", k.String())
}

func TestLaplacian(t *testing.T) {
	// ||x - y|| = 3, sigma = 1, so k = exp(-3).
	k := NewLaplacian(1)
	assert.InDelta(t, math.Exp(-3), k.Evaluate([]float64{0}, []float64{3}), 1e-12)

	assert.Equal(t, "Laplacian Kernel (sigma = 1.0000)", k.String())
}

func TestFunc(t *testing.T) {
	k := Func[string](func(a, b string) float64 {
		return float64(len(a) + len(b))
	})

	assert.Equal(t, 5.0, k.Evaluate("ab", "cde"))
	assert.Equal(t, "custom kernel", k.String())
}

func TestSymmetry(t *testing.T) {
	kernels := []Kernel[[]float64]{
		Linear{},
		NewPolynomialWith(3, 0.5, 1),
		NewGaussian(1.5),
		NewLaplacian(0.7),
	}

	x := []float64{0.3, -1.2, 4.5}
	y := []float64{2.1, 0.4, -0.8}

	for _, k := range kernels {
		t.Run(k.String(), func(t *testing.T) {
			assert.Equal(t, k.Evaluate(x, y), k.Evaluate(y, x))
		})
	}
}
