package experiment_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/dynamo"
	"github.com/san-kum/popgrowth/internal/experiment"
	"github.com/san-kum/popgrowth/internal/growth"
	"github.com/san-kum/popgrowth/internal/plot"
)

var _ = Describe("Runner", func() {
	var (
		ctx     context.Context
		plotter *recordingPlotter
		out     *bytes.Buffer
		runner  *experiment.Runner
	)

	BeforeEach(func() {
		ctx = context.Background()
		plotter = &recordingPlotter{}
		out = &bytes.Buffer{}
		runner = experiment.NewRunner(plotter, out, experiment.WithLogger(quietLogger()))
	})

	Describe("Growth", func() {
		It("integrates the baseline trajectory and plots it", func() {
			res, err := runner.Growth(ctx, config.DefaultGrowth())
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Times).To(HaveLen(400))
			Expect(res.Population).To(HaveLen(400))
			Expect(res.Population[0]).To(Equal(1e6))

			end := res.Population[len(res.Population)-1]
			Expect(end).To(BeNumerically(">", 1e6))
			Expect(end).To(BeNumerically("<", 1e9))
			Expect(res.Saturation).To(BeNumerically("~", end/1e9, 1e-12))

			Expect(plotter.calls).To(HaveLen(1))
			call := plotter.calls[0]
			Expect(call.fig.Output).To(Equal("population_vs_time_logistic.png"))
			Expect(call.fig.Title).To(Equal("Population vs Time (Logistic Growth)"))
			Expect(call.fig.XLabel).To(Equal("Time (hours)"))
			Expect(call.fig.YLabel).To(Equal("Population size"))
			Expect(call.fig.Markers).To(BeFalse())
			Expect(call.fig.Note).To(HavePrefix("saturation: 0.9"))
			Expect(call.ys).To(Equal(res.Population))
		})

		It("prints nothing to the answer channel", func() {
			_, err := runner.Growth(ctx, config.DefaultGrowth())
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Len()).To(BeZero())
		})

		It("fails on a zero carrying capacity without plotting", func() {
			cfg := config.DefaultGrowth()
			cfg.Params.Capacity = 0

			_, err := runner.Growth(ctx, cfg)
			Expect(errors.Is(err, dynamo.ErrInvalidState)).To(BeTrue())
			Expect(plotter.calls).To(BeEmpty())
		})

		It("fails on a single point grid", func() {
			cfg := config.DefaultGrowth()
			cfg.Grid.Points = 1

			_, err := runner.Growth(ctx, cfg)
			Expect(errors.Is(err, dynamo.ErrShortGrid)).To(BeTrue())
		})

		It("surfaces plot failures", func() {
			plotter.err = errors.New("disk full")

			_, err := runner.Growth(ctx, config.DefaultGrowth())
			Expect(err).To(MatchError(ContainSubstring("disk full")))
		})
	})

	Describe("Sweep", func() {
		It("produces one steady state per nutrient level in input order", func() {
			cfg := config.DefaultSweep()
			res, err := runner.Sweep(ctx, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Len()).To(Equal(20))
			Expect(res.SteadyStates).To(HaveLen(20))

			levels := dynamo.Linspace(0.1, 2.0, 20)
			grid := dynamo.Linspace(0, 30, 600)
			for i, level := range levels {
				Expect(res.Levels[i]).To(Equal(level))
				Expect(res.Capacities[i]).To(Equal(5e8 * level))

				traj, err := growth.Simulate(growth.Params{Rate: 0.5, Capacity: 5e8 * level, Initial: 1e6}, grid)
				Expect(err).NotTo(HaveOccurred())
				Expect(res.SteadyStates[i]).To(Equal(traj[len(traj)-1]))

				Expect(res.SteadyStates[i]).To(BeNumerically(">", 1e6))
				Expect(res.SteadyStates[i]).To(BeNumerically("<=", res.Capacities[i]*(1+1e-12)))
			}
		})

		It("prints the highest-level steady state as the answer", func() {
			res, err := runner.Sweep(ctx, config.DefaultSweep())
			Expect(err).NotTo(HaveOccurred())

			line := strings.TrimSuffix(out.String(), "\n")
			Expect(line).To(HavePrefix("Answer: "))
			Expect(strings.Count(out.String(), "\n")).To(Equal(1))

			v, err := strconv.ParseFloat(strings.TrimPrefix(line, "Answer: "), 64)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(res.Answer()))
			Expect(v).To(Equal(res.SteadyStates[19]))
			Expect(v).To(BeNumerically("~", 1e9, 1e6))
		})

		It("plots steady state against nutrient level with markers", func() {
			res, err := runner.Sweep(ctx, config.DefaultSweep())
			Expect(err).NotTo(HaveOccurred())

			Expect(plotter.calls).To(HaveLen(1))
			call := plotter.calls[0]
			Expect(call.fig.Output).To(Equal("final_population_vs_nutrient.png"))
			Expect(call.fig.Title).To(Equal("Steady-state Population vs Nutrient Concentration"))
			Expect(call.fig.XLabel).To(Equal("Nutrient concentration (arbitrary units)"))
			Expect(call.fig.YLabel).To(Equal("Steady-state population size"))
			Expect(call.fig.Markers).To(BeTrue())
			Expect(call.xs).To(Equal(res.Levels))
			Expect(call.ys).To(Equal(res.SteadyStates))
		})

		It("gives identical results sequentially and in parallel", func() {
			seq := config.DefaultSweep()
			seq.Workers = 1
			par := config.DefaultSweep()
			par.Workers = 8

			a, err := runner.Sweep(ctx, seq)
			Expect(err).NotTo(HaveOccurred())
			b, err := runner.Sweep(ctx, par)
			Expect(err).NotTo(HaveOccurred())

			Expect(b.SteadyStates).To(Equal(a.SteadyStates))
		})

		It("fails when a sweep point has zero capacity", func() {
			cfg := config.DefaultSweep()
			cfg.Nutrient = config.GridConfig{Start: 0, Stop: 1, Points: 3}

			_, err := runner.Sweep(ctx, cfg)
			Expect(errors.Is(err, dynamo.ErrInvalidState)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("sweep point 0"))
			Expect(out.Len()).To(BeZero())
			Expect(plotter.calls).To(BeEmpty())
		})

		It("stops when the context is canceled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := runner.Sweep(cctx, config.DefaultSweep())
			Expect(errors.Is(err, dynamo.ErrContextCanceled)).To(BeTrue())
		})
	})

	Describe("RunAll", func() {
		It("runs the trajectory then the sweep", func() {
			Expect(runner.RunAll(ctx)).To(Succeed())

			Expect(plotter.calls).To(HaveLen(2))
			Expect(plotter.calls[0].fig.Output).To(Equal("population_vs_time_logistic.png"))
			Expect(plotter.calls[1].fig.Output).To(Equal("final_population_vs_nutrient.png"))
			Expect(out.String()).To(HavePrefix("Answer: "))
		})

		It("writes both PNG files", func() {
			dir := GinkgoT().TempDir()
			r := experiment.NewRunner(plot.NewPNG(dir), out, experiment.WithLogger(quietLogger()))

			Expect(r.RunAll(ctx)).To(Succeed())
			for _, name := range []string{"population_vs_time_logistic.png", "final_population_vs_nutrient.png"} {
				info, err := os.Stat(filepath.Join(dir, name))
				Expect(err).NotTo(HaveOccurred())
				Expect(info.Size()).To(BeNumerically(">", 0))
			}
		})

		It("stops at the first failing experiment", func() {
			cfg := config.DefaultGrowth()
			cfg.Params.Capacity = 0
			r := experiment.NewRunner(plotter, out, experiment.WithLogger(quietLogger()), experiment.WithGrowth(cfg))

			err := r.RunAll(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("experiment growth"))
			Expect(out.Len()).To(BeZero())
		})
	})

	Describe("Run", func() {
		It("lists the available experiments", func() {
			Expect(runner.Names()).To(Equal([]string{"growth", "sweep"}))
		})

		It("rejects unknown experiments", func() {
			Expect(runner.Run(ctx, "chemostat")).To(MatchError(ContainSubstring("unknown experiment")))
		})

		It("uses the configured sweep", func() {
			cfg := config.DefaultSweep()
			cfg.Nutrient.Points = 5
			r := experiment.NewRunner(plotter, out, experiment.WithLogger(quietLogger()), experiment.WithSweep(cfg))

			Expect(r.Run(ctx, "sweep")).To(Succeed())
			Expect(plotter.calls[0].xs).To(HaveLen(5))
		})
	})
})
