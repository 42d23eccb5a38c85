package plot

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 500
)

// PNG writes charts as PNG images into Dir, replacing existing files.
type PNG struct {
	Dir    string
	Width  int
	Height int
}

func NewPNG(dir string) *PNG {
	return &PNG{Dir: dir, Width: DefaultWidth, Height: DefaultHeight}
}

// Path returns where fig is written.
func (p *PNG) Path(fig Figure) string {
	return filepath.Join(p.Dir, fig.Output)
}

func (p *PNG) Render(fig Figure, xs, ys []float64) error {
	if err := checkSeries(xs, ys); err != nil {
		return errors.Wrapf(err, "plot %q", fig.Output)
	}

	graph := p.chart(fig, xs, ys)

	path := p.Path(fig)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return errors.Wrapf(err, "render %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func (p *PNG) chart(fig Figure, xs, ys []float64) *chart.Chart {
	style := chart.Style{
		StrokeColor: chart.ColorBlue,
		StrokeWidth: 2.0,
	}
	if fig.Markers {
		style.DotColor = chart.ColorBlue
		style.DotWidth = 4.0
	}

	gridStyle := chart.Style{
		StrokeColor: chart.ColorLightGray,
		StrokeWidth: 0.5,
	}

	graph := &chart.Chart{
		Title:  fig.Title,
		Width:  p.Width,
		Height: p.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name:           fig.XLabel,
			ValueFormatter: formatValue,
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           fig.YLabel,
			ValueFormatter: formatValue,
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fig.Series,
				XValues: xs,
				YValues: ys,
				Style:   style,
			},
		},
	}

	if fig.Series != "" {
		graph.Elements = []chart.Renderable{chart.Legend(graph)}
	}
	return graph
}

// formatValue keeps large population counts short on the axes.
func formatValue(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'g', 3, 64)
}
