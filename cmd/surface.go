/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/aerolab/panelflow/plots"
)

// surfaceCmd represents the surface command
var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Surface pressure distribution over a sweep of angles of attack",
	Long: `
Resamples the section contour, builds the panel set once and solves the
flow tangency system at every requested angle of attack. Solves run in
parallel and a failed angle does not abort the rest of the sweep.

panelflow surface --naca 2412 --alphas -4,0,4,8`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		cp := processCase(cmd)
		if alphas, _ := cmd.Flags().GetFloat64Slice("alphas"); len(alphas) != 0 {
			cp.Alphas = alphas
		}
		name, raw := loadSection(cp)
		ps := buildSolver(cp, raw)
		fmt.Printf("Solving %s with %d panels at %d angles\n", name, len(ps.Panels), len(cp.Alphas))

		results := ps.Sweep(cp.Alphas)
		for _, res := range results {
			if res.Err != nil {
				fmt.Printf("alpha = %8.3f FAILED: %s\n", res.Alpha, res.Err.Error())
				continue
			}
			cpMin := res.Surface[0].Cp
			for _, sp := range res.Surface {
				if sp.Cp < cpMin {
					cpMin = sp.Cp
				}
			}
			fmt.Printf("alpha = %8.3f, Cp_min = %8.4f, net_flux = %10.3e, circulation = %10.3e\n",
				res.Alpha, cpMin, res.Solution.NetSourceFlux(), res.Solution.Circulation())
		}

		if plotFile, _ := cmd.Flags().GetString("plot"); len(plotFile) != 0 {
			if err := plots.CpDistribution(plotFile, name, results); err != nil {
				fmt.Printf("plot error: %s\n", err.Error())
				return
			}
			fmt.Printf("Wrote %s\n", plotFile)
		}
		if geomFile, _ := cmd.Flags().GetString("plotGeometry"); len(geomFile) != 0 {
			if err := plots.Geometry(geomFile, name, ps.Panels); err != nil {
				fmt.Printf("plot error: %s\n", err.Error())
				return
			}
			fmt.Printf("Wrote %s\n", geomFile)
		}
	},
}

func init() {
	rootCmd.AddCommand(surfaceCmd)
	addCaseFlags(surfaceCmd)
	surfaceCmd.Flags().Float64SliceP("alphas", "a", nil, "angles of attack in degrees")
	surfaceCmd.Flags().String("plot", "", "write the Cp distribution plot to this PNG file")
	surfaceCmd.Flags().String("plotGeometry", "", "write the panelized geometry plot to this PNG file")
}
