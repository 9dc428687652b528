package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/aerolab/panelflow/utils"
)

const (
	// closureTol decides whether a raw contour already ends on its first point.
	closureTol = 1.e-6
	// extentTol below which the contour is treated as a single degenerate point.
	extentTol = 1.e-9
)

// Resampler redistributes a raw closed polyline onto NumPanels+1 points with
// cosine spacing in normalized arc length, clustering points at the
// trailing edge where the traversal starts and ends.
type Resampler struct {
	NumPanels int
}

func NewResampler(numPanels int) *Resampler {
	return &Resampler{NumPanels: numPanels}
}

// Resample fits value-preserving cubic splines x(t), y(t) through the raw
// points against the normalized arc-length parameter t, then samples them at
// cosine-spaced parameters. The returned contour is closed exactly.
func (rs *Resampler) Resample(raw []Point) (*Contour, error) {
	var (
		N   = rs.NumPanels
		pts = dropCoincident(raw)
	)
	if N < 3 {
		return nil, &GeometryError{
			NumPoints: len(raw),
			Reason:    fmt.Sprintf("cannot close a contour with %d panels, need at least 3", N),
		}
	}
	if len(pts) < 3 {
		return nil, &GeometryError{
			NumPoints: len(raw),
			Reason:    "need at least 3 distinct points to form a closed contour",
		}
	}
	if extent(pts) < extentTol {
		return nil, &GeometryError{
			NumPoints: len(raw),
			Reason:    "contour has zero planar extent",
		}
	}
	// Explicit closure before parameterization
	if dist(pts[0], pts[len(pts)-1]) > closureTol {
		pts = append(pts, pts[0])
	} else {
		pts[len(pts)-1] = pts[0]
	}

	t, total := PerimeterParameter(pts)
	if total < extentTol {
		return nil, &GeometryError{
			NumPoints: len(raw),
			Reason:    "contour arc length is degenerate",
		}
	}

	var (
		x, y   = coords(pts)
		fx, fy interp.NaturalCubic
	)
	if err := fx.Fit(t.DataP, x); err != nil {
		return nil, &GeometryError{NumPoints: len(raw), Reason: err.Error()}
	}
	if err := fy.Fit(t.DataP, y); err != nil {
		return nil, &GeometryError{NumPoints: len(raw), Reason: err.Error()}
	}

	// tNew = 0.5*(1-cos(beta)), beta in [0,pi] - dense at t=0 and t=1
	out := make([]Point, N+1)
	for i := 0; i <= N; i++ {
		tNew := 0.5 * (1. - math.Cos(math.Pi*float64(i)/float64(N)))
		out[i] = Point{X: fx.Predict(tNew), Y: fy.Predict(tNew)}
	}
	out[N] = out[0] // closed exactly
	return &Contour{Points: out}, nil
}

func dropCoincident(raw []Point) (pts []Point) {
	pts = make([]Point, 0, len(raw))
	for _, p := range raw {
		if len(pts) > 0 && dist(p, pts[len(pts)-1]) < utils.NODETOL {
			continue
		}
		pts = append(pts, p)
	}
	return
}

func dist(a, b Point) float64 {
	return math.Sqrt(utils.POW(b.X-a.X, 2) + utils.POW(b.Y-a.Y, 2))
}

func extent(pts []Point) float64 {
	var (
		xmin, xmax = pts[0].X, pts[0].X
		ymin, ymax = pts[0].Y, pts[0].Y
	)
	for _, p := range pts {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	return math.Max(xmax-xmin, ymax-ymin)
}

func coords(pts []Point) (x, y []float64) {
	x = make([]float64, len(pts))
	y = make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i] = p.X, p.Y
	}
	return
}
