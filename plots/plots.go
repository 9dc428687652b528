// Package plots renders solver output to image files. It sits outside the
// core: the solver itself never touches the filesystem.
package plots

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/aerolab/panelflow/panel"
	"github.com/aerolab/panelflow/solver"
)

// Geometry draws the panelized contour.
func Geometry(filename, title string, panels []panel.Panel) error {
	pts := make(plotter.XYs, len(panels)+1)
	for i := range panels {
		pts[i].X = panels[i].X1
		pts[i].Y = panels[i].Y1
	}
	pts[len(panels)].X = panels[len(panels)-1].X2
	pts[len(panels)].Y = panels[len(panels)-1].Y2

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"
	if err := plotutil.AddLinePoints(p, "surface", pts); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// CpDistribution overlays the surface pressure distribution for each
// successful sweep result. The Cp axis is inverted, suction side up, the
// aerodynamics convention.
func CpDistribution(filename, title string, results []solver.SweepResult) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "Cp"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	var lines []interface{}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		pts := make(plotter.XYs, len(res.Surface))
		for i, sp := range res.Surface {
			pts[i].X = sp.Panel.XC
			pts[i].Y = sp.Cp
		}
		lines = append(lines, fmt.Sprintf("alpha = %g", res.Alpha), pts)
	}
	if len(lines) == 0 {
		return fmt.Errorf("no successful results to plot")
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filename)
}
