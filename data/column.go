package data

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DataType identifies the element type of a column.
type DataType string

const (
	// TypeFloat64 is the 64-bit floating point element type.
	TypeFloat64 DataType = "float64"
)

// Column is the uniform value-accessor capability set shared by all typed
// columns of the tabular framework. The accessor names follow the framework
// convention: Short is a 16-bit integer, Int a 32-bit integer, Long a 64-bit
// integer, Float a 32-bit float and Double a 64-bit float.
//
// Accessors that would narrow the column's element type fail with
// *ErrUnsupportedCast instead of silently truncating.
type Column interface {
	// Name returns the column name. Names are not required to be unique
	// across columns.
	Name() string

	// Type returns the declared element type.
	Type() DataType

	// Len returns the number of elements.
	Len() int

	Byte(i int) (int8, error)
	Short(i int) (int16, error)
	Int(i int) (int32, error)
	Long(i int) (int64, error)
	Float(i int) (float32, error)
	Double(i int) (float64, error)

	// Array materializes the column as raw float64s in original order.
	// Callers must not mutate the returned slice.
	Array() []float64
}

// unsupportedCasts provides the failing defaults for the accessors a column
// kind does not support. Column implementations embed it and override only
// the accessors that are lossless for their element type.
type unsupportedCasts struct {
	from DataType
}

func (u unsupportedCasts) cast(to string) error {
	return &ErrUnsupportedCast{From: u.from, To: to}
}

func (u unsupportedCasts) Byte(int) (int8, error)     { return 0, u.cast("byte") }
func (u unsupportedCasts) Short(int) (int16, error)   { return 0, u.cast("short") }
func (u unsupportedCasts) Int(int) (int32, error)     { return 0, u.cast("int") }
func (u unsupportedCasts) Long(int) (int64, error)    { return 0, u.cast("long") }
func (u unsupportedCasts) Float(int) (float32, error) { return 0, u.cast("float") }
func (u unsupportedCasts) Double(int) (float64, error) {
	return 0, u.cast("double")
}

var _ Column = (*Float64)(nil)

// Float64 is an immutable named column of 64-bit floating point values.
//
// A 64-bit float cannot be losslessly narrowed, so every narrowing accessor
// fails; only Double and Array succeed.
type Float64 struct {
	unsupportedCasts
	name string
	data []float64
}

func newFloat64(name string, data []float64) *Float64 {
	return &Float64{
		unsupportedCasts: unsupportedCasts{from: TypeFloat64},
		name:             name,
		data:             data,
	}
}

// NewFloat64 creates a named float64 column. The values are copied, so later
// mutation of the input slice does not affect the column.
func NewFloat64(name string, values []float64) *Float64 {
	return newFloat64(name, slices.Clone(values))
}

// CollectFloat64 creates a named float64 column by eagerly draining a
// one-shot sequence. The resulting column is fully materialized and
// immutable, like one built from a slice.
func CollectFloat64(name string, seq iter.Seq[float64]) *Float64 {
	return newFloat64(name, slices.Collect(seq))
}

// Name returns the column name.
func (c *Float64) Name() string { return c.name }

// Type returns TypeFloat64.
func (c *Float64) Type() DataType { return TypeFloat64 }

// Len returns the number of elements.
func (c *Float64) Len() int { return len(c.data) }

// Double returns the element at index i.
func (c *Float64) Double(i int) (float64, error) { return c.data[i], nil }

// Array returns the backing sequence in original order. Callers must not
// mutate the returned slice.
func (c *Float64) Array() []float64 { return c.data }

// Preview renders the first n elements as a bracketed, comma-separated list.
// When n < Len, the list is suffixed with a grouped count of the remaining
// elements. Negative n is treated as 0.
func (c *Float64) Preview(n int) string {
	n = max(n, 0)

	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n && i < len(c.data); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatFloat(c.data[i]))
	}
	if n >= len(c.data) {
		sb.WriteByte(']')
	} else {
		fmt.Fprintf(&sb, ", ... %s more]", humanize.Comma(int64(len(c.data)-n)))
	}

	return sb.String()
}

func (c *Float64) String() string { return c.Preview(10) }

// formatFloat renders v with an explicit fraction for whole numbers, so that
// 1.0 prints as "1.0" rather than "1".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		s += ".0"
	}
	return s
}
