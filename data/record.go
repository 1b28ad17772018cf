package data

import "math"

// Record is one row of generic tabular input: an ordered, read-only
// collection of named, typed fields. The full record framework lives outside
// this module; kernel machines only consume this boundary.
type Record interface {
	// Len returns the number of fields.
	Len() int

	// FieldName returns the name of field i.
	FieldName(i int) string

	// Field returns the value of field i.
	Field(i int) any

	// ToArray materializes the record as a raw numeric vector, in field
	// order.
	ToArray() []float64
}

var _ Record = (*Row)(nil)

// Row is a minimal Record implementation for composing records in-process.
type Row struct {
	names  []string
	values []any
}

// NewRow creates a row from parallel name and value slices. It panics when
// the lengths differ.
func NewRow(names []string, values []any) *Row {
	if len(names) != len(values) {
		panic("data: names and values length mismatch")
	}
	return &Row{names: names, values: values}
}

func (r *Row) Len() int { return len(r.values) }

func (r *Row) FieldName(i int) string { return r.names[i] }

func (r *Row) Field(i int) any { return r.values[i] }

// ToArray converts every field to float64, in field order. Non-numeric
// fields materialize as NaN.
func (r *Row) ToArray() []float64 {
	out := make([]float64, len(r.values))
	for i, v := range r.values {
		out[i] = toFloat64(v)
	}
	return out
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return math.NaN()
	}
}
