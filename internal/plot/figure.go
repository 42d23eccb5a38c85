// Package plot renders (x, y) series produced by the experiments, either
// as PNG charts on disk or as line charts in the terminal.
package plot

import (
	"github.com/pkg/errors"

	"github.com/san-kum/popgrowth/internal/config"
)

// Figure is the labelling of one chart.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	// Output is the file name the chart is saved under.
	Output string
	// Series names the plotted line; a non-empty name adds a legend.
	Series string
	// Markers draws a dot at every data point.
	Markers bool
	// Note is a summary line printed under terminal charts. PNG output
	// leaves it out.
	Note string
}

// FromConfig builds a Figure from the experiment plot settings.
func FromConfig(c config.PlotConfig, markers bool) Figure {
	return Figure{
		Title:   c.Title,
		XLabel:  c.XLabel,
		YLabel:  c.YLabel,
		Output:  c.Output,
		Series:  c.Series,
		Markers: markers,
	}
}

func checkSeries(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return errors.Errorf("series length mismatch: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return errors.New("empty series")
	}
	return nil
}
