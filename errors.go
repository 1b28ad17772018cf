package mercer

import (
	"errors"
	"fmt"
)

var (
	// ErrRecordNotSupported is returned by PredictRecord when the machine's
	// instance type is not a raw numeric vector, so no conversion path from
	// a tabular record exists.
	ErrRecordNotSupported = errors.New("record prediction requires raw vector instances")
)

// ErrLengthMismatch indicates that the number of weights supplied at
// construction does not match the number of reference instances.
type ErrLengthMismatch struct {
	Instances int
	Weights   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d instances, %d weights", e.Instances, e.Weights)
}
