package integrators

import "github.com/san-kum/popgrowth/internal/dynamo"

// Euler is the explicit first-order method: x' = x + dx*dt, using only the
// derivative at the current state.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dx[i]*dt
	}
	return result
}
