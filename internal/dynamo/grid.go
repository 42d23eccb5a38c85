package dynamo

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// spacingTol is the relative tolerance allowed between consecutive grid
// spacings. Linspace output differs from exact spacing only by rounding.
const spacingTol = 1e-9

// Grid is an ordered, evenly spaced sequence of simulation instants.
type Grid []float64

// Linspace returns n evenly spaced points over [start, stop], both ends
// included. A single point yields [start]; n <= 0 yields an empty grid.
func Linspace(start, stop float64, n int) Grid {
	switch {
	case n <= 0:
		return Grid{}
	case n == 1:
		return Grid{start}
	}
	return Grid(floats.Span(make([]float64, n), start, stop))
}

func (g Grid) Len() int { return len(g) }

// Span returns the first and last instants of the grid.
func (g Grid) Span() (float64, float64) {
	if len(g) == 0 {
		return 0, 0
	}
	return g[0], g[len(g)-1]
}

// Step returns the grid spacing t[1]-t[0]. It fails with ErrShortGrid when
// the grid has fewer than two points and with ErrNonUniformGrid when any
// later spacing differs from the first one.
func (g Grid) Step() (float64, error) {
	if len(g) < 2 {
		return 0, errors.Wrapf(ErrShortGrid, "grid has %d point(s)", len(g))
	}
	dt := g[1] - g[0]
	abs := spacingTol * math.Abs(dt)
	for i := 2; i < len(g); i++ {
		d := g[i] - g[i-1]
		if !scalar.EqualWithinAbsOrRel(d, dt, abs, spacingTol) {
			return 0, errors.Wrapf(ErrNonUniformGrid, "spacing %g at index %d, expected %g", d, i, dt)
		}
	}
	return dt, nil
}
