// Package data holds the tabular boundary types consumed by kernel
// machines: the typed-column value-accessor capability set with its
// immutable float64 column, and the Record interface through which generic
// tabular rows are bridged into raw numeric vectors.
package data
