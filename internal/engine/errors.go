package engine

import (
	"errors"
	"fmt"
)

// ErrHabitNotFound is returned by lookups the CLI makes before acting on an id.
// The stores themselves treat unknown ids as no-ops.
var ErrHabitNotFound = errors.New("habit not found")

// InvalidIDError reports a habit id argument that is not a positive integer.
type InvalidIDError struct {
	Input string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid habit id %q", e.Input)
}
