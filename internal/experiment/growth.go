package experiment

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/dynamo"
	"github.com/san-kum/popgrowth/internal/growth"
	"github.com/san-kum/popgrowth/internal/metrics"
	"github.com/san-kum/popgrowth/internal/plot"
)

type GrowthResult struct {
	Times      []float64
	Population []float64
	// Saturation is the final population as a fraction of capacity.
	Saturation float64
}

// Growth integrates one logistic trajectory and plots population against
// time.
func (r *Runner) Growth(ctx context.Context, cfg config.Growth) (*GrowthResult, error) {
	grid := dynamo.Linspace(cfg.Grid.Start, cfg.Grid.Stop, cfg.Grid.Points)

	sat := metrics.NewSaturation(cfg.Params.Capacity)
	run, err := growth.Run(ctx, cfg.Params, grid, sat)
	if err != nil {
		return nil, err
	}

	res := &GrowthResult{
		Times:      run.Times,
		Population: run.Component(0),
		Saturation: run.Metrics[sat.Name()],
	}

	start, stop := grid.Span()
	r.log.WithFields(logrus.Fields{
		"start":      start,
		"stop":       stop,
		"points":     len(res.Population),
		"final":      res.Population[len(res.Population)-1],
		"saturation": res.Saturation,
	}).Debug("trajectory integrated")

	fig := plot.FromConfig(cfg.Plot, false)
	fig.Note = fmt.Sprintf("saturation: %.4f of carrying capacity", res.Saturation)
	if err := r.plotter.Render(fig, res.Times, res.Population); err != nil {
		return nil, errors.Wrap(err, "plot trajectory")
	}
	r.log.WithField("output", fig.Output).Info("plot written")

	return res, nil
}
