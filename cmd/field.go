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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/aerolab/panelflow/field"
)

// fieldCmd represents the field command
var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Velocity and pressure field on a rectangular grid around the section",
	Long: `
Solves the surface source strengths at one angle of attack, then superposes
the freestream with the induced velocity of every panel at each grid point.

panelflow field --naca 0012 --alpha 4 -o field.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		cp := processCase(cmd)
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		if res, _ := cmd.Flags().GetInt("res"); res != 0 {
			cp.GridRes = res
		}
		name, raw := loadSection(cp)
		ps := buildSolver(cp, raw)

		sol, _, err := ps.SolveSurface(alpha)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		spec := field.GridSpec{
			XMin: cp.GridXMin, XMax: cp.GridXMax,
			YMin: cp.GridYMin, YMax: cp.GridYMax,
			NX: cp.GridRes, NY: cp.GridRes,
		}
		start := time.Now()
		f, err := field.SampleGrid(sol, spec)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Sampled %d points for %s at alpha = %g in %v\n",
			len(f.Samples), name, alpha, time.Since(start))

		outFile, _ := cmd.Flags().GetString("output")
		if err = writeFieldCSV(outFile, f); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", outFile)
	},
}

func writeFieldCSV(filename string, f *field.Field) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	w := csv.NewWriter(file)
	defer w.Flush()
	if err = w.Write([]string{"x", "y", "u", "v", "vmag", "cp"}); err != nil {
		return err
	}
	fc := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, s := range f.Samples {
		if err = w.Write([]string{fc(s.X), fc(s.Y), fc(s.U), fc(s.V), fc(s.VMag), fc(s.Cp)}); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(fieldCmd)
	addCaseFlags(fieldCmd)
	fieldCmd.Flags().Float64P("alpha", "a", 0, "angle of attack in degrees")
	fieldCmd.Flags().Int("res", 0, "grid resolution per axis")
	fieldCmd.Flags().StringP("output", "o", "field.csv", "CSV output file")
}
