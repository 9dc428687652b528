package solver

import (
	"runtime"
	"sync"

	"github.com/aerolab/panelflow/utils"
)

// SweepResult is the outcome for one angle of attack in a sweep. A failed
// alpha carries its own error and leaves the rest of the batch intact.
type SweepResult struct {
	Alpha    float64
	Solution *Solution
	Surface  []SurfacePoint
	Err      error
}

// Sweep solves the same panel geometry at every requested angle of attack.
// Solves share the panels read-only and run in parallel, one partition of
// the alpha range per worker.
func (ps *PanelSolver) Sweep(alphas []float64) []SweepResult {
	var (
		results = make([]SweepResult, len(alphas))
		pm      = utils.NewPartitionMap(runtime.NumCPU(), len(alphas))
		wg      sync.WaitGroup
	)
	for n := 0; n < pm.ParallelDegree; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				sol, surf, err := ps.SolveSurface(alphas[k])
				results[k] = SweepResult{
					Alpha:    alphas[k],
					Solution: sol,
					Surface:  surf,
					Err:      err,
				}
			}
		}(n)
	}
	wg.Wait()
	return results
}
