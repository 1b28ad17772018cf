// Package kernel provides the similarity-function contract consumed by
// kernel machines, plus a small catalog of Mercer kernels over raw numeric
// vectors.
//
// Kernels over []float64 assume both operands have the same length; length
// checks are the caller's responsibility.
package kernel

// Kernel is a similarity function over pairs of instances of type T.
//
// Implementations must be pure: Evaluate may not mutate its arguments or
// keep state between calls. Symmetry and positive-definiteness hold by
// convention of the individual kernel and are not enforced at this layer.
type Kernel[T any] interface {
	// Evaluate returns the similarity between a and b.
	Evaluate(a, b T) float64

	// String returns a short human-readable description of the kernel.
	String() string
}

// Func adapts a plain function to the Kernel interface. It is the simplest
// way to plug in an ad-hoc kernel, including kernels over opaque domain
// types.
type Func[T any] func(a, b T) float64

// Evaluate calls f.
func (f Func[T]) Evaluate(a, b T) float64 { return f(a, b) }

func (f Func[T]) String() string { return "custom kernel" }
