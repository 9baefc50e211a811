package room

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSweepOutcomes saves a bar chart of how many casts ended on each surface.
//
// The image format follows the extension of filename.
func PlotSweepOutcomes(result SweepResult, filename string, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Outcomes of %d casts", len(result.Casts))
	p.Y.Label.Text = "Casts"

	surfaces := make([]SurfaceID, 0, len(result.Hits))
	for surface := range result.Hits {
		surfaces = append(surfaces, surface)
	}
	sort.Slice(surfaces, func(i, j int) bool { return surfaces[i] < surfaces[j] })

	var values plotter.Values
	var names []string
	for _, surface := range surfaces {
		values = append(values, float64(result.Hits[surface]))
		names = append(names, string(surface))
	}
	values = append(values, float64(result.Escapes), float64(result.Exhausted))
	names = append(names, Escaped.String(), Exhausted.String())

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(width, height, filename); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}

// PlotSweepLengths saves a scatter of path length against aim angle for the casts that
// ended on a surface.
func PlotSweepLengths(result SweepResult, filename string, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = "Path length to a surface"
	p.X.Label.Text = "Angle (deg)"
	p.Y.Label.Text = "Length"

	var xys plotter.XYs
	for _, c := range result.Casts {
		if c.Outcome == Terminated {
			xys = append(xys, plotter.XY{X: c.Shot.Angle, Y: c.TotalLength})
		}
	}
	if len(xys) == 0 {
		return fmt.Errorf("no cast ended on a surface")
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("building scatter: %w", err)
	}
	p.Add(scatter)

	if err := p.Save(width, height, filename); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
