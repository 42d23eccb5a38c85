package physics

import "github.com/san-kum/popgrowth/internal/dynamo"

// Logistic is single-species growth limited by a carrying capacity:
// dN/dt = r*N*(1 - N/K). State is [N].
type Logistic struct {
	Rate     float64
	Capacity float64
}

func NewLogistic(rate, capacity float64) *Logistic {
	return &Logistic{Rate: rate, Capacity: capacity}
}

func (l *Logistic) StateDim() int {
	return 1
}

func (l *Logistic) ControlDim() int {
	return 0
}

// Derive evaluates the growth rate at x. A zero capacity is not guarded:
// the division yields Inf or NaN, which the simulator rejects.
func (l *Logistic) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	n := x[0]
	return dynamo.State{l.Rate * n * (1 - n/l.Capacity)}
}
