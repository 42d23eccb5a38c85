package dynamo

import (
	"fmt"

	"github.com/pkg/errors"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector holding NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrShortGrid indicates a time grid with fewer than two points, so no
	// step size can be derived from it.
	ErrShortGrid = errors.New("dynamo: time grid needs at least two points")

	// ErrNonUniformGrid indicates a time grid whose spacing is not constant.
	ErrNonUniformGrid = errors.New("dynamo: time grid spacing is not uniform")

	// ErrContextCanceled indicates the simulation was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

// Cause lets github.com/pkg/errors.Cause see through the wrapper.
func (e *SimulationError) Cause() error {
	return e.Wrapped
}
