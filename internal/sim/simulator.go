package sim

import (
	"context"

	"github.com/pkg/errors"

	"github.com/san-kum/popgrowth/internal/dynamo"
)

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]dynamo.Metric, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric) { s.metrics = append(s.metrics, m) }

// Run samples the system at every instant of grid, starting from x0 at
// grid[0]. The step size is taken from the grid and stays fixed.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, grid dynamo.Grid, cfg dynamo.Config) (*dynamo.Result, error) {
	dt, err := grid.Step()
	if err != nil {
		return nil, err
	}
	if len(x0) != s.dyn.StateDim() {
		return nil, errors.Wrapf(dynamo.ErrDimensionMismatch, "state has %d components, system wants %d", len(x0), s.dyn.StateDim())
	}

	n := grid.Len()
	result := &dynamo.Result{
		States:  make([]dynamo.State, 0, n),
		Times:   make([]float64, 0, n),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	u := make(dynamo.Control, s.dyn.ControlDim())

	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, grid[0])
	s.observe(x, u, grid[0])

	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return result, errors.Wrap(dynamo.ErrContextCanceled, ctx.Err().Error())
		default:
		}

		t := grid[i-1]
		newX := s.integrator.Step(s.dyn, x, u, t, dt)

		if cfg.ValidateState && !newX.IsValid() {
			return result, &dynamo.SimulationError{Step: i, Time: t, State: x.Clone(), Wrapped: dynamo.ErrInvalidState}
		}
		if cfg.NonNegative {
			newX.ClampMin(0)
		}

		x = newX
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, grid[i])
		s.observe(x, u, grid[i])
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) observe(x dynamo.State, u dynamo.Control, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, u, t)
	}
}
