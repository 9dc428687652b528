// Package field superposes the freestream with panel-induced velocities on a
// rectangular grid of off-body points.
package field

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/aerolab/panelflow/solver"
	"github.com/aerolab/panelflow/utils"
)

// GridSpec is a rectangular field-point grid: explicit bounds and the number
// of samples along each axis.
type GridSpec struct {
	XMin, XMax float64
	YMin, YMax float64
	NX, NY     int
}

// DefaultGrid covers a unit-chord section with margin, matching the usual
// plotting window.
func DefaultGrid(res int) GridSpec {
	return GridSpec{
		XMin: -0.5, XMax: 1.5,
		YMin: -0.6, YMax: 0.6,
		NX: res, NY: res,
	}
}

func (g GridSpec) validate() error {
	if g.NX < 2 || g.NY < 2 {
		return fmt.Errorf("grid resolution %dx%d too small, need at least 2x2", g.NX, g.NY)
	}
	if g.XMax <= g.XMin || g.YMax <= g.YMin {
		return fmt.Errorf("empty grid bounds [%g,%g]x[%g,%g]", g.XMin, g.XMax, g.YMin, g.YMax)
	}
	return nil
}

// Sample is the flow state at one field point.
type Sample struct {
	X, Y float64
	U, V float64
	VMag float64
	Cp   float64
}

// Field holds samples in row-major order: index = iy*NX + ix.
type Field struct {
	Spec    GridSpec
	Samples []Sample
}

func (f *Field) At(ix, iy int) Sample {
	return f.Samples[iy*f.Spec.NX+ix]
}

// SampleGrid evaluates the solved state over the grid. Points are
// independent, so the work is split across workers with a partition map.
// Points coincident with panel midpoints stay finite through the kernel's
// logarithm guard; any non-finite result is still reported, never zeroed.
func SampleGrid(sol *solver.Solution, spec GridSpec) (*Field, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	var (
		NP         = spec.NX * spec.NY
		uInf, vInf = sol.Free.Velocity()
		dx         = (spec.XMax - spec.XMin) / float64(spec.NX-1)
		dy         = (spec.YMax - spec.YMin) / float64(spec.NY-1)
		samples    = make([]Sample, NP)
		pm         = utils.NewPartitionMap(runtime.NumCPU(), NP)
		wg         sync.WaitGroup
		errs       = make([]error, pm.ParallelDegree)
	)
	for n := 0; n < pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				var (
					ix = k % spec.NX
					iy = k / spec.NX
					x  = spec.XMin + dx*float64(ix)
					y  = spec.YMin + dy*float64(iy)
				)
				u, v := solver.InducedVelocity(sol.Panels, sol.Sigma, x, y)
				u += uInf
				v += vInf
				vmag := math.Sqrt(u*u + v*v)
				cp := 1. - utils.POW(vmag/sol.Free.VInf, 2)
				if !utils.AllFinite([]float64{u, v, cp}) {
					errs[n] = &solver.NumericInstabilityError{Quantity: "field velocity", Index: k, Value: vmag}
					return
				}
				samples[k] = Sample{X: x, Y: y, U: u, V: v, VMag: vmag, Cp: cp}
			}
		}(n)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Field{Spec: spec, Samples: samples}, nil
}
