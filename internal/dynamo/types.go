package dynamo

import (
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ClampMin raises every component below floor to floor, in place.
func (s State) ClampMin(floor float64) State {
	for i, v := range s {
		if v < floor {
			s[i] = floor
		}
	}
	return s
}

type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

type Metric interface {
	Name() string
	Observe(x State, u Control, t float64)
	Value() float64
	Reset()
}

type Config struct {
	// ValidateState aborts the run on the first NaN or Inf state.
	ValidateState bool
	// NonNegative floors every state component at zero after each step.
	NonNegative bool
}

func DefaultConfig() Config {
	return Config{
		ValidateState: true,
		NonNegative:   true,
	}
}

type Result struct {
	States     []State
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Component returns the i-th state component across the whole run.
func (r *Result) Component(i int) []float64 {
	out := make([]float64, len(r.States))
	for k, s := range r.States {
		out[k] = s[i]
	}
	return out
}

// Final returns the last recorded state, or nil for an empty result.
func (r *Result) Final() State {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}
