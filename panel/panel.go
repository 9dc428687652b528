package panel

import (
	"fmt"
	"math"

	"github.com/aerolab/panelflow/geometry"
	"github.com/aerolab/panelflow/utils"
)

// LengthTol is the minimum admissible panel length.
const LengthTol = 1.e-10

// Panel is one straight segment of the discretized surface. Panels are plain
// value records held in a flat slice so a built geometry can be shared
// read-only across concurrent solves.
type Panel struct {
	X1, Y1 float64 // start point
	X2, Y2 float64 // end point
	XC, YC float64 // control (mid) point
	Length float64
	Theta  float64 // inclination, atan2(dy, dx)
	Beta   float64 // outward normal angle, Theta - pi/2 for a counterclockwise contour
}

type DegeneratePanelError struct {
	Index  int
	Length float64
}

func (e *DegeneratePanelError) Error() string {
	return fmt.Sprintf("degenerate panel %d: length %g below tolerance %g", e.Index, e.Length, LengthTol)
}

// Build creates the ordered panel set from a closed contour. The contour is
// traversed counterclockwise, so rotating the tangent by -pi/2 points Beta
// away from the body uniformly for all panels.
func Build(c *geometry.Contour) (panels []Panel, err error) {
	var (
		N = c.NumPanels()
	)
	panels = make([]Panel, N)
	for i := 0; i < N; i++ {
		var (
			p1, p2 = c.Points[i], c.Points[i+1]
			dx     = p2.X - p1.X
			dy     = p2.Y - p1.Y
			length = math.Sqrt(utils.POW(dx, 2) + utils.POW(dy, 2))
		)
		if length < LengthTol {
			return nil, &DegeneratePanelError{Index: i, Length: length}
		}
		theta := math.Atan2(dy, dx)
		panels[i] = Panel{
			X1: p1.X, Y1: p1.Y,
			X2: p2.X, Y2: p2.Y,
			XC: 0.5 * (p1.X + p2.X), YC: 0.5 * (p1.Y + p2.Y),
			Length: length,
			Theta:  theta,
			Beta:   theta - 0.5*math.Pi,
		}
	}
	return
}

// Perimeter is the summed length of all panels.
func Perimeter(panels []Panel) (p float64) {
	for i := range panels {
		p += panels[i].Length
	}
	return
}
