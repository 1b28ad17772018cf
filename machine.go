package mercer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mercerml/mercer/data"
	"github.com/mercerml/mercer/kernel"
)

// batchGrainSize is the number of inputs each worker evaluates per task
// during batch prediction.
const batchGrainSize = 256

// Machine is a fitted kernel machine over instances of type T.
//
// A Machine is constructed once from already-fitted parameters and is
// immutable thereafter; predictions are pure reads.
type Machine[T any] struct {
	kernel    kernel.Kernel[T]
	instances []T
	weights   []float64
	bias      float64
	rawVector bool
	logger    *slog.Logger
}

// New constructs a machine from already-fitted parameters: a kernel
// function, the reference instances (e.g. support vectors), and one weight
// per instance. The bias defaults to 0 and can be set with WithBias.
//
// New fails with *ErrLengthMismatch when the number of weights does not
// match the number of instances.
//
// The machine shares the instance and weight slices with the caller instead
// of copying them; callers must not mutate them afterwards.
func New[T any](k kernel.Kernel[T], instances []T, weights []float64, opts ...Option) (*Machine[T], error) {
	if len(weights) != len(instances) {
		return nil, &ErrLengthMismatch{Instances: len(instances), Weights: len(weights)}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Raw-vector bridging is decided once, from the static instance type.
	var zero T
	_, rawVector := any(zero).([]float64)

	m := &Machine[T]{
		kernel:    k,
		instances: instances,
		weights:   weights,
		bias:      o.bias,
		rawVector: rawVector,
		logger:    o.logger,
	}

	m.logger.Debug("kernel machine constructed",
		"kernel", k.String(),
		"instances", len(instances),
		"bias", o.bias,
	)

	return m, nil
}

// Predict returns bias + sum over i of weights[i] * kernel(x, instances[i]).
//
// The sum is accumulated in instance order, so repeated calls with the same
// input produce bit-identical results.
func (m *Machine[T]) Predict(x T) float64 {
	f := m.bias
	for i, instance := range m.instances {
		f += m.weights[i] * m.kernel.Evaluate(x, instance)
	}
	return f
}

// PredictRecord predicts from a generic tabular record.
//
// The record is materialized into a raw numeric vector and evaluated through
// Predict. This only works when the machine's instances are raw numeric
// vectors themselves; for any other instance type there is no general
// numeric conversion path and PredictRecord fails with ErrRecordNotSupported.
// Use SupportsRecords to check applicability up front.
func (m *Machine[T]) PredictRecord(r data.Record) (float64, error) {
	if !m.rawVector {
		return 0, fmt.Errorf("%w: instance type is not []float64", ErrRecordNotSupported)
	}

	x, _ := any(r.ToArray()).(T)

	return m.Predict(x), nil
}

// PredictBatch evaluates the machine for every input concurrently and
// returns the predictions in input order. Results are identical to calling
// Predict in a loop.
func (m *Machine[T]) PredictBatch(ctx context.Context, xs []T) ([]float64, error) {
	out := make([]float64, len(xs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for lo := 0; lo < len(xs); lo += batchGrainSize {
		hi := min(lo+batchGrainSize, len(xs))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = m.Predict(xs[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.logger.Debug("batch prediction completed", "count", len(xs))

	return out, nil
}

// SupportsRecords reports whether PredictRecord can bridge generic tabular
// records, i.e. whether the instance type is a raw numeric vector.
func (m *Machine[T]) SupportsRecords() bool {
	return m.rawVector
}

// Kernel returns the kernel function.
func (m *Machine[T]) Kernel() kernel.Kernel[T] {
	return m.kernel
}

// Instances returns the reference instances. Callers must treat the returned
// slice as read-only.
func (m *Machine[T]) Instances() []T {
	return m.instances
}

// Weights returns the instance weights. Callers must treat the returned
// slice as read-only.
func (m *Machine[T]) Weights() []float64 {
	return m.weights
}

// Bias returns the additive intercept.
func (m *Machine[T]) Bias() float64 {
	return m.bias
}

// String returns a human-readable summary for diagnostics.
func (m *Machine[T]) String() string {
	return fmt.Sprintf("Kernel machine (%s): %d vectors, bias = %.4f", m.kernel, len(m.instances), m.bias)
}
