package experiment

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/dynamo"
	"github.com/san-kum/popgrowth/internal/growth"
	"github.com/san-kum/popgrowth/internal/plot"
)

// SweepResult holds one steady-state estimate per nutrient level, in the
// order the levels were swept.
type SweepResult struct {
	Levels       []float64
	Capacities   []float64
	SteadyStates []float64
}

func (s *SweepResult) Len() int { return len(s.Levels) }

// Answer is the steady state at the last (highest) nutrient level.
func (s *SweepResult) Answer() float64 {
	if len(s.SteadyStates) == 0 {
		return 0
	}
	return s.SteadyStates[len(s.SteadyStates)-1]
}

// Sweep scales the carrying capacity with nutrient level, reads each run's
// population at the end of the shared grid, plots the curve and prints the
// highest-level value as the answer.
func (r *Runner) Sweep(ctx context.Context, cfg config.Sweep) (*SweepResult, error) {
	res, err := r.sweepPoints(ctx, cfg)
	if err != nil {
		return nil, err
	}

	fig := plot.FromConfig(cfg.Plot, true)
	if err := r.plotter.Render(fig, res.Levels, res.SteadyStates); err != nil {
		return nil, errors.Wrap(err, "plot sweep")
	}
	r.log.WithField("output", fig.Output).Info("plot written")

	if _, err := fmt.Fprintln(r.out, "Answer:", res.Answer()); err != nil {
		return nil, errors.Wrap(err, "write answer")
	}
	return res, nil
}

func (r *Runner) sweepPoints(ctx context.Context, cfg config.Sweep) (*SweepResult, error) {
	levels := dynamo.Linspace(cfg.Nutrient.Start, cfg.Nutrient.Stop, cfg.Nutrient.Points)
	grid := dynamo.Linspace(cfg.Grid.Start, cfg.Grid.Stop, cfg.Grid.Points)

	res := &SweepResult{
		Levels:       levels,
		Capacities:   make([]float64, len(levels)),
		SteadyStates: make([]float64, len(levels)),
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, level := range levels {
		k := cfg.Alpha * level
		res.Capacities[i] = k

		g.Go(func() error {
			p := growth.Params{Rate: cfg.Rate, Capacity: k, Initial: cfg.Initial}
			ss, err := growth.SteadyState(gctx, p, grid)
			if err != nil {
				return errors.Wrapf(err, "sweep point %d (nutrient %g)", i, level)
			}
			res.SteadyStates[i] = ss

			r.log.WithFields(logrus.Fields{
				"level":        level,
				"capacity":     k,
				"steady_state": ss,
			}).Debug("sweep point done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
