// Package growth integrates logistic population growth over a time grid
// with a fixed-step Euler scheme, flooring the population at zero.
package growth

import (
	"context"

	"github.com/pkg/errors"

	"github.com/san-kum/popgrowth/internal/dynamo"
	"github.com/san-kum/popgrowth/internal/integrators"
	"github.com/san-kum/popgrowth/internal/physics"
	"github.com/san-kum/popgrowth/internal/sim"
)

// Params is the (r, K, N0) triple of a logistic run.
type Params struct {
	Rate     float64 `yaml:"rate"`
	Capacity float64 `yaml:"capacity"`
	Initial  float64 `yaml:"initial"`
}

// Simulate returns one population value per grid instant. Entry 0 is
// p.Initial; each later entry is the previous one advanced by an Euler
// step of size t[1]-t[0], with negative results replaced by zero.
func Simulate(p Params, t dynamo.Grid) ([]float64, error) {
	result, err := Run(context.Background(), p, t)
	if err != nil {
		return nil, err
	}
	return result.Component(0), nil
}

// Run is Simulate with cancellation and optional metrics attached. The
// full result, including metric values, is returned.
func Run(ctx context.Context, p Params, t dynamo.Grid, metrics ...dynamo.Metric) (*dynamo.Result, error) {
	s := sim.New(physics.NewLogistic(p.Rate, p.Capacity), integrators.NewEuler())
	for _, m := range metrics {
		s.AddMetric(m)
	}

	// Only a zero capacity is trapped. Any other update that leaves the
	// finite range is floored by the clamp like every negative population.
	cfg := dynamo.DefaultConfig()
	cfg.ValidateState = p.Capacity == 0

	result, err := s.Run(ctx, dynamo.State{p.Initial}, t, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "logistic run r=%g K=%g N0=%g", p.Rate, p.Capacity, p.Initial)
	}
	return result, nil
}

// SteadyState integrates over t and returns the final population. It is a
// fixed-horizon readout: nothing checks that the run has converged.
func SteadyState(ctx context.Context, p Params, t dynamo.Grid) (float64, error) {
	result, err := Run(ctx, p, t)
	if err != nil {
		return 0, err
	}
	return result.Final()[0], nil
}
