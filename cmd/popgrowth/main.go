package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/experiment"
	"github.com/san-kum/popgrowth/internal/logging"
	"github.com/san-kum/popgrowth/internal/plot"
)

var (
	outDir  string
	verbose bool
)

// main runs both experiments when called without a subcommand. Any error is
// printed with its stack trace and the process exits with status 1.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "popgrowth: %+v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var log *logrus.Logger

	rootCmd := &cobra.Command{
		Use:           "popgrowth",
		Short:         "logistic population growth experiments",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.Setup(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(cmd, plot.NewPNG(outDir), log).RunAll(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&outDir, "out", ".", "directory plots are written to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log progress to stderr")

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "plot a single logistic trajectory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(cmd, plot.NewPNG(outDir), log).Run(cmd.Context(), "growth")
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep nutrient level and plot steady-state population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(cmd, plot.NewPNG(outDir), log).Run(cmd.Context(), "sweep")
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "draw both experiments in the terminal without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(cmd, plot.NewASCII(cmd.OutOrStdout()), log).RunAll(cmd.Context())
		},
	}

	paramsCmd := &cobra.Command{
		Use:       "params [preset...]",
		Short:     "print the fixed experiment parameters as yaml",
		ValidArgs: config.ListPresets(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.WriteYAML(cmd.OutOrStdout(), args...)
		},
	}

	rootCmd.AddCommand(growthCmd, sweepCmd, previewCmd, paramsCmd)
	return rootCmd
}

func newRunner(cmd *cobra.Command, p experiment.Plotter, log logrus.FieldLogger) *experiment.Runner {
	return experiment.NewRunner(p, cmd.OutOrStdout(), experiment.WithLogger(log))
}
