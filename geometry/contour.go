package geometry

import (
	"fmt"
	"math"

	"github.com/aerolab/panelflow/utils"
)

// Point is a position on the section contour, nondimensionalized so the
// chord runs from x=0 to x=1.
type Point struct {
	X, Y float64
}

// Contour is one closed loop of surface points traversed trailing edge ->
// upper surface -> leading edge -> lower surface -> trailing edge. After
// resampling the first and last point coincide exactly. Self-intersecting
// input is not detected.
type Contour struct {
	Points []Point
}

type GeometryError struct {
	NumPoints int
	Reason    string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid contour geometry (%d points): %s", e.NumPoints, e.Reason)
}

// FromXY pairs coordinate slices into contour points.
func FromXY(x, y []float64) []Point {
	pts := make([]Point, len(x))
	for i := range x {
		pts[i] = Point{X: x[i], Y: y[i]}
	}
	return pts
}

// XY splits the contour back into coordinate slices.
func (c *Contour) XY() (x, y []float64) {
	x = make([]float64, len(c.Points))
	y = make([]float64, len(c.Points))
	for i, p := range c.Points {
		x[i], y[i] = p.X, p.Y
	}
	return
}

// NumPanels is the panel count a closed contour supports.
func (c *Contour) NumPanels() int {
	return len(c.Points) - 1
}

// PerimeterParameter returns cumulative arc length normalized to [0,1].
func PerimeterParameter(pts []Point) (t utils.Vector, total float64) {
	t = utils.NewVector(len(pts))
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		total += math.Sqrt(dx*dx + dy*dy)
		t.DataP[i] = total
	}
	if total > 0 {
		t.Scale(1. / total)
	}
	return
}
