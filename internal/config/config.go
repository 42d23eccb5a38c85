package config

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/popgrowth/internal/growth"
)

const (
	DefaultRate     = 0.5
	DefaultCapacity = 1e9
	DefaultInitial  = 1e6
	DefaultAlpha    = 5e8
)

// GridConfig describes an evenly spaced time grid.
type GridConfig struct {
	Start  float64 `yaml:"start"`
	Stop   float64 `yaml:"stop"`
	Points int     `yaml:"points"`
}

// PlotConfig is the labelling of one exported chart.
type PlotConfig struct {
	Output string `yaml:"output"`
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`
	Series string `yaml:"series,omitempty"`
}

// Growth is the single trajectory experiment.
type Growth struct {
	Params growth.Params `yaml:"params"`
	Grid   GridConfig    `yaml:"grid"`
	Plot   PlotConfig    `yaml:"plot"`
}

// Sweep varies the carrying capacity with nutrient level: K = Alpha*level.
type Sweep struct {
	Rate     float64    `yaml:"rate"`
	Initial  float64    `yaml:"initial"`
	Alpha    float64    `yaml:"alpha"`
	Nutrient GridConfig `yaml:"nutrient"`
	Grid     GridConfig `yaml:"grid"`
	Plot     PlotConfig `yaml:"plot"`
	// Workers bounds concurrent sweep points. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

func DefaultGrowth() Growth {
	return Growth{
		Params: growth.Params{
			Rate:     DefaultRate,
			Capacity: DefaultCapacity,
			Initial:  DefaultInitial,
		},
		Grid: GridConfig{Start: 0, Stop: 20, Points: 400},
		Plot: PlotConfig{
			Output: "population_vs_time_logistic.png",
			Title:  "Population vs Time (Logistic Growth)",
			XLabel: "Time (hours)",
			YLabel: "Population size",
			Series: "Logistic growth (numerical)",
		},
	}
}

func DefaultSweep() Sweep {
	return Sweep{
		Rate:     DefaultRate,
		Initial:  DefaultInitial,
		Alpha:    DefaultAlpha,
		Nutrient: GridConfig{Start: 0.1, Stop: 2.0, Points: 20},
		Grid:     GridConfig{Start: 0, Stop: 30, Points: 600},
		Plot: PlotConfig{
			Output: "final_population_vs_nutrient.png",
			Title:  "Steady-state Population vs Nutrient Concentration",
			XLabel: "Nutrient concentration (arbitrary units)",
			YLabel: "Steady-state population size",
		},
	}
}

// Presets holds the fixed experiment parameter sets by name.
var Presets = map[string]interface{}{
	"growth": DefaultGrowth(),
	"sweep":  DefaultSweep(),
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteYAML encodes the named presets to w, all of them when names is
// empty.
func WriteYAML(w io.Writer, names ...string) error {
	if len(names) == 0 {
		names = ListPresets()
	}

	doc := make(map[string]interface{}, len(names))
	for _, name := range names {
		p, ok := Presets[name]
		if !ok {
			return errors.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
		}
		doc[name] = p
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode presets")
	}
	return errors.Wrap(enc.Close(), "flush presets")
}
