package experiment

import (
	"context"
	"io"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/plot"
)

// Plotter receives the finished (x, y) series of an experiment.
type Plotter interface {
	Render(fig plot.Figure, xs, ys []float64) error
}

type Option func(*Runner)

func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Runner) { r.log = l }
}

func WithGrowth(c config.Growth) Option {
	return func(r *Runner) { r.growth = c }
}

func WithSweep(c config.Sweep) Option {
	return func(r *Runner) { r.sweep = c }
}

// Runner executes the experiments with fixed parameter sets and hands
// their results to a Plotter. Text answers go to out.
type Runner struct {
	plotter     Plotter
	out         io.Writer
	log         logrus.FieldLogger
	growth      config.Growth
	sweep       config.Sweep
	experiments map[string]func(context.Context) error
}

func NewRunner(p Plotter, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		plotter: p,
		out:     out,
		log:     logrus.StandardLogger(),
		growth:  config.DefaultGrowth(),
		sweep:   config.DefaultSweep(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.experiments = map[string]func(context.Context) error{
		"growth": func(ctx context.Context) error {
			_, err := r.Growth(ctx, r.growth)
			return err
		},
		"sweep": func(ctx context.Context) error {
			_, err := r.Sweep(ctx, r.sweep)
			return err
		},
	}
	return r
}

// Order is the sequence RunAll executes experiments in.
var Order = []string{"growth", "sweep"}

func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.experiments))
	for name := range r.experiments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Runner) Run(ctx context.Context, name string) error {
	fn, ok := r.experiments[name]
	if !ok {
		return errors.Errorf("unknown experiment: %s (available: %v)", name, r.Names())
	}

	log := r.log.WithField("experiment", name)
	log.Info("experiment started")
	if err := fn(ctx); err != nil {
		return errors.Wrapf(err, "experiment %s", name)
	}
	log.Info("experiment finished")
	return nil
}

// RunAll runs the single trajectory experiment, then the nutrient sweep.
func (r *Runner) RunAll(ctx context.Context) error {
	for _, name := range Order {
		if err := r.Run(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
