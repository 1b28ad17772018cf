// Package mercer evaluates fitted kernel machines.
//
// A kernel machine generalizes a family of instance-based regressors
// (support vector machines, Gaussian process posteriors, kernel ridge
// regression) behind one evaluation contract: a weighted sum of a kernel
// function over a fixed set of reference instances, plus a bias. The machine
// holds already-fitted state; training lives elsewhere.
//
// # Quick Start
//
//	m, err := mercer.New(kernel.NewGaussian(1.5), instances, weights, mercer.WithBias(0.2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := m.Predict(x)
//
// Machines are generic over the instance representation. Instances may be
// raw numeric vectors, structured records, or opaque domain objects, as long
// as the kernel understands them. When instances are raw numeric vectors
// ([]float64), a generic tabular record can be bridged with PredictRecord;
// for any other instance type the record path fails with
// ErrRecordNotSupported and the strongly typed Predict must be used.
//
// # Concurrency
//
// A Machine is immutable after construction. All methods are safe for
// concurrent use without synchronization.
package mercer
