package data

import "fmt"

// ErrUnsupportedCast indicates an attempt to read a column through an
// accessor that would narrow its element type.
type ErrUnsupportedCast struct {
	From DataType
	To   string
}

func (e *ErrUnsupportedCast) Error() string {
	return fmt.Sprintf("cast %s to %s", e.From, e.To)
}
