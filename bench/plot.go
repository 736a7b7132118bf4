// Package bench - convergence and population-ratio charts.
package bench

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNothingToPlot indicates that every input series was empty.
var ErrNothingToPlot = errors.New("bench: nothing to plot")

// Chart dimensions.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
	boxWidth    = 24
)

// Series is one named line of best distance per generation.
type Series struct {
	Name    string
	History []float64
}

// PlotHistories draws one line per series (generation on X, best distance on
// Y) and saves the chart to path; the image format follows the extension.
// Empty series are skipped.
func PlotHistories(path, title string, series []Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best distance"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	var drawn int
	for i, s := range series {
		if len(s.History) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.History))
		for g, d := range s.History {
			pts[g].X = float64(g + 1)
			pts[g].Y = d
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("bench: plot %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
		drawn++
	}
	if drawn == 0 {
		return ErrNothingToPlot
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("bench: save %s: %w", path, err)
	}
	return nil
}

// PlotConvergence charts the best run of the best configuration for each
// city size.
func PlotConvergence(path string, summaries []Summary) error {
	best := BestConfigurations(summaries)
	series := make([]Series, len(best))
	for i, s := range best {
		series[i] = Series{Name: fmt.Sprintf("%d cities", s.Cities), History: s.BestHistory}
	}
	return PlotHistories(path, "Convergence by problem size", series)
}

// PlotRatioImpact draws one box per population ratio over the mean
// stagnation generation of every configuration using that ratio.
func PlotRatioImpact(path string, summaries []Summary) error {
	var (
		groups = make(map[int]plotter.Values)
		ratios []int
	)
	for _, s := range summaries {
		if _, ok := groups[s.PopulationRatio]; !ok {
			ratios = append(ratios, s.PopulationRatio)
		}
		groups[s.PopulationRatio] = append(groups[s.PopulationRatio], s.MeanStagnationGeneration)
	}
	if len(ratios) == 0 {
		return ErrNothingToPlot
	}
	slices.Sort(ratios)

	p := plot.New()
	p.Title.Text = "Impact of population ratio on convergence"
	p.X.Label.Text = "Population ratio"
	p.Y.Label.Text = "Stagnation generation"
	p.Add(plotter.NewGrid())

	names := make([]string, len(ratios))
	for i, r := range ratios {
		box, err := plotter.NewBoxPlot(vg.Points(boxWidth), float64(i), groups[r])
		if err != nil {
			return fmt.Errorf("bench: plot ratio %d: %w", r, err)
		}
		box.FillColor = plotutil.Color(i)
		p.Add(box)
		names[i] = strconv.Itoa(r)
	}
	p.NominalX(names...)

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("bench: save %s: %w", path, err)
	}
	return nil
}
