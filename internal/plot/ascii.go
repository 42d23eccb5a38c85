package plot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4")).
	MarginTop(1)

// ASCII draws charts as terminal line graphs. Nothing touches the disk.
type ASCII struct {
	W      io.Writer
	Width  int
	Height int
}

func NewASCII(w io.Writer) *ASCII {
	return &ASCII{W: w, Width: 80, Height: 15}
}

func (a *ASCII) Render(fig Figure, xs, ys []float64) error {
	if err := checkSeries(xs, ys); err != nil {
		return errors.Wrapf(err, "plot %q", fig.Title)
	}

	caption := fmt.Sprintf("%s vs %s, %s in [%g, %g]", fig.YLabel, fig.XLabel, fig.XLabel, xs[0], xs[len(xs)-1])
	graph := asciigraph.Plot(ys,
		asciigraph.Height(a.Height),
		asciigraph.Width(a.Width),
		asciigraph.Caption(caption),
	)

	body := graph
	if fig.Note != "" {
		body += "\n" + fig.Note
	}

	_, err := fmt.Fprintf(a.W, "%s\n%s\n\n", titleStyle.Render(fig.Title), body)
	return errors.Wrap(err, "write terminal chart")
}
