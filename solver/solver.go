package solver

import (
	"fmt"
	"math"

	"github.com/aerolab/panelflow/geometry"
	"github.com/aerolab/panelflow/panel"
	"github.com/aerolab/panelflow/utils"
)

// Config carries the solver parameters explicitly; there is no ambient or
// global solver state.
type Config struct {
	NumPanels int
	VInf      float64
}

func DefaultConfig() Config {
	return Config{
		NumPanels: 160,
		VInf:      1.,
	}
}

// Solution is the immutable result of one solve: the panel geometry, its
// per-panel source strengths and the freestream they were solved for.
//
// The method is source-only: there is no vortex distribution and no Kutta
// condition, so circulatory (lifting) flow is outside what it can represent.
// Cambered sections will not reproduce physical lift; this is a documented
// modeling limit, not a defect.
type Solution struct {
	Panels []panel.Panel
	Sigma  []float64
	Free   Freestream
}

// Solve assembles and solves the flow-tangency system for one freestream.
// Panels are shared read-only; concurrent calls at different alphas are
// independent.
func Solve(panels []panel.Panel, fs Freestream) (*Solution, error) {
	A, b := AssembleSystem(panels, fs)
	sigma, err := A.LUSolve(b)
	if err != nil {
		return nil, &SingularSystemError{
			N:         len(panels),
			Condition: A.ConditionNumber(),
			Cause:     err,
		}
	}
	for i, s := range sigma.DataP {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, &NumericInstabilityError{Quantity: "source strength", Index: i, Value: s}
		}
	}
	return &Solution{
		Panels: panels,
		Sigma:  sigma.DataP,
		Free:   fs,
	}, nil
}

// NetSourceFlux is sum(sigma_i * length_i); approximately zero for any
// closed body, since a source-only solution cannot create net mass.
func (sol *Solution) NetSourceFlux() (flux float64) {
	for i := range sol.Panels {
		flux += sol.Sigma[i] * sol.Panels[i].Length
	}
	return
}

// Circulation is the tangential-velocity line integral around the surface,
// an indicator that stays near zero for the source-only model.
func (sol *Solution) Circulation() (gamma float64) {
	for _, sp := range sol.surfacePoints() {
		gamma += sp.Vt * sp.Panel.Length
	}
	return
}

// SurfacePoint couples one panel to its surface tangential velocity and
// pressure coefficient, ordered identically to the panels so leading and
// trailing edge identity survives for downstream integration.
type SurfacePoint struct {
	Panel panel.Panel
	Vt    float64
	Cp    float64
}

// Surface evaluates the tangential velocity and Cp on every panel. Vt is the
// freestream tangential component plus the tangential velocity induced by
// every other panel's sheet; a panel's own sheet adds nothing tangentially at
// its midpoint, so the principal-value sum skips j == i.
func (sol *Solution) Surface() ([]SurfacePoint, error) {
	pts := sol.surfacePoints()
	for i, sp := range pts {
		if math.IsNaN(sp.Vt) || math.IsInf(sp.Vt, 0) {
			return nil, &NumericInstabilityError{Quantity: "tangential velocity", Index: i, Value: sp.Vt}
		}
		if math.IsNaN(sp.Cp) || math.IsInf(sp.Cp, 0) {
			return nil, &NumericInstabilityError{Quantity: "surface Cp", Index: i, Value: sp.Cp}
		}
	}
	return pts, nil
}

func (sol *Solution) surfacePoints() []SurfacePoint {
	var (
		alpha = sol.Free.AlphaRad()
		pts   = make([]SurfacePoint, len(sol.Panels))
	)
	for i := range sol.Panels {
		var (
			p  = sol.Panels[i]
			tx = math.Cos(p.Theta)
			ty = math.Sin(p.Theta)
			vt = sol.Free.VInf * (math.Cos(alpha)*tx + math.Sin(alpha)*ty)
		)
		for j := range sol.Panels {
			if j == i {
				continue
			}
			u, v := unitSourceVelocity(&sol.Panels[j], p.XC, p.YC, logTolMatrix)
			vt += sol.Sigma[j] * (u*tx + v*ty)
		}
		pts[i] = SurfacePoint{
			Panel: p,
			Vt:    vt,
			Cp:    1. - utils.POW(vt/sol.Free.VInf, 2),
		}
	}
	return pts
}

// PanelSolver owns a discretized geometry. The panels are built once and
// reused across solves at many angles of attack.
type PanelSolver struct {
	Config Config
	Panels []panel.Panel
}

// NewPanelSolver resamples the raw contour and builds its panel set.
func NewPanelSolver(cfg Config, raw []geometry.Point) (*PanelSolver, error) {
	if cfg.NumPanels < 3 {
		return nil, fmt.Errorf("config: need at least 3 panels, have %d", cfg.NumPanels)
	}
	if cfg.VInf <= 0 {
		return nil, fmt.Errorf("config: freestream speed must be positive, have %g", cfg.VInf)
	}
	contour, err := geometry.NewResampler(cfg.NumPanels).Resample(raw)
	if err != nil {
		return nil, err
	}
	panels, err := panel.Build(contour)
	if err != nil {
		return nil, err
	}
	return &PanelSolver{Config: cfg, Panels: panels}, nil
}

// SolveSurface is the surface query: one angle of attack in, per-panel
// geometry, Cp and tangential velocity out.
func (ps *PanelSolver) SolveSurface(alphaDeg float64) (*Solution, []SurfacePoint, error) {
	sol, err := Solve(ps.Panels, Freestream{VInf: ps.Config.VInf, AlphaDeg: alphaDeg})
	if err != nil {
		return nil, nil, err
	}
	surf, err := sol.Surface()
	if err != nil {
		return nil, nil, err
	}
	return sol, surf, nil
}
