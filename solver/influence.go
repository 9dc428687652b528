package solver

import (
	"math"

	"github.com/aerolab/panelflow/panel"
	"github.com/aerolab/panelflow/utils"
)

const (
	// logTolMatrix guards the squared-distance logarithms of the influence
	// integral against coincident points during assembly.
	logTolMatrix = 1.e-12
	// logTolField is the matching guard for off-body kernel evaluation.
	logTolField = 1.e-10
)

// AssembleSystem builds the dense flow-tangency system A*sigma = b for a
// constant-strength source distribution on each panel.
//
// A[i][j] is the velocity induced at panel i's control point by unit source
// strength on panel j, projected onto panel i's outward normal. The self term
// is the one-sided limit of the sheet's normal jump, exactly 1/2 on the
// outer side - the general kernel is 0/0 on the panel itself and must not be
// evaluated there.
//
// b[i] cancels the freestream component along panel i's outward normal.
func AssembleSystem(panels []panel.Panel, fs Freestream) (A utils.Matrix, b utils.Vector) {
	var (
		N     = len(panels)
		alpha = fs.AlphaRad()
	)
	A = utils.NewMatrix(N, N)
	b = utils.NewVector(N)

	for i := range panels {
		var (
			pi = &panels[i]
			nx = math.Cos(pi.Beta)
			ny = math.Sin(pi.Beta)
		)
		b.DataP[i] = -fs.VInf * (math.Cos(alpha)*nx + math.Sin(alpha)*ny)
		for j := range panels {
			if i == j {
				A.DataP[i*N+j] = 0.5
				continue
			}
			u, v := unitSourceVelocity(&panels[j], pi.XC, pi.YC, logTolMatrix)
			A.DataP[i*N+j] = u*nx + v*ny
		}
	}
	return
}

// InducedVelocity is the velocity at (x, y) from the source sheets on all
// panels, excluding the freestream. Valid at arbitrary field points;
// near-panel logarithms are guarded, so points on a panel midpoint remain
// finite.
func InducedVelocity(panels []panel.Panel, sigma []float64, x, y float64) (u, v float64) {
	for k := range panels {
		du, dv := unitSourceVelocity(&panels[k], x, y, logTolField)
		u += sigma[k] * du
		v += sigma[k] * dv
	}
	return
}

// unitSourceVelocity is the global-frame velocity at (x, y) induced by a
// unit-strength source sheet on p: in p's local frame the integrated sheet
// gives ln(r1/r2)/(2*pi) along the panel and (th2-th1)/(2*pi) across it,
// positive away from the sheet.
func unitSourceVelocity(p *panel.Panel, x, y, logTol float64) (u, v float64) {
	X, Y := localFrame(p, x, y)
	var (
		r1sq = utils.POW(X, 2) + utils.POW(Y, 2)
		r2sq = utils.POW(X-p.Length, 2) + utils.POW(Y, 2)
		th1  = math.Atan2(Y, X)
		th2  = math.Atan2(Y, X-p.Length)
		J    = 0.5 * math.Log((r1sq+logTol)/(r2sq+logTol))
		I    = th2 - th1
	)
	u = (J*math.Cos(p.Theta) - I*math.Sin(p.Theta)) / (2. * math.Pi)
	v = (J*math.Sin(p.Theta) + I*math.Cos(p.Theta)) / (2. * math.Pi)
	return
}

// localFrame maps (x, y) into p's panel-aligned coordinates with the origin
// at p's start point.
func localFrame(p *panel.Panel, x, y float64) (X, Y float64) {
	var (
		dx  = x - p.X1
		dy  = y - p.Y1
		cos = math.Cos(p.Theta)
		sin = math.Sin(p.Theta)
	)
	X = dx*cos + dy*sin
	Y = -dx*sin + dy*cos
	return
}
