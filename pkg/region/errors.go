package region

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput matches any *DegenerateInputError via errors.Is.
var ErrDegenerateInput = errors.New("degenerate input")

// DegenerateInputError reports shape parameters that cannot form a region:
// a non-positive radius, fewer than three polygon vertices, or a
// non-finite coordinate. Such regions are never stored.
type DegenerateInputError struct {
	ID     int
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("shape %d: degenerate input: %s", e.ID, e.Reason)
}

// Is lets errors.Is match the ErrDegenerateInput sentinel.
func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}
