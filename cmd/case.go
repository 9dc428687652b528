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
	"os"

	"github.com/spf13/cobra"

	"github.com/aerolab/panelflow/InputParameters"
	"github.com/aerolab/panelflow/geometry"
	"github.com/aerolab/panelflow/naca"
	"github.com/aerolab/panelflow/readfiles"
	"github.com/aerolab/panelflow/solver"
)

func addCaseFlags(c *cobra.Command) {
	c.Flags().StringP("caseFile", "F", "", "YAML case parameters file")
	c.Flags().StringP("dat", "D", "", "Selig format airfoil coordinate file")
	c.Flags().String("naca", "", "analytic NACA section code, e.g. 0012 or 23012")
	c.Flags().IntP("panels", "n", 0, "number of surface panels")
	c.Flags().Float64("vinf", 0, "freestream speed")
	c.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}

func processCase(c *cobra.Command) (cp *InputParameters.CaseParameters) {
	var (
		err error
	)
	cp = InputParameters.DefaultCaseParameters()
	if caseFile, _ := c.Flags().GetString("caseFile"); len(caseFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(caseFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = cp.Parse(data); err != nil {
			fmt.Printf("error parsing %s: %s\n", caseFile, err.Error())
			exampleFile := `
########################################
Title: "NACA 2412 sweep"
NumPanels: 160
Vinf: 1.
Alphas: [-4, 0, 4, 8]
NACA: "2412"
GridXMin: -0.5
GridXMax: 1.5
GridYMin: -0.6
GridYMax: 0.6
GridRes: 50
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
	}
	// Flags override the case file
	if datFile, _ := c.Flags().GetString("dat"); len(datFile) != 0 {
		cp.AirfoilDat = datFile
	}
	if code, _ := c.Flags().GetString("naca"); len(code) != 0 {
		cp.NACA = code
		cp.AirfoilDat = ""
	}
	if n, _ := c.Flags().GetInt("panels"); n != 0 {
		cp.NumPanels = n
	}
	if v, _ := c.Flags().GetFloat64("vinf"); v != 0 {
		cp.VInf = v
	}
	cp.Print()
	return
}

func loadSection(cp *InputParameters.CaseParameters) (name string, raw []geometry.Point) {
	var (
		err error
	)
	if len(cp.AirfoilDat) != 0 {
		if name, raw, err = readfiles.ReadAirfoilDat(cp.AirfoilDat); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		return
	}
	if raw, err = naca.Section(cp.NACA, 240); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	name = "NACA " + cp.NACA
	return
}

func buildSolver(cp *InputParameters.CaseParameters, raw []geometry.Point) (ps *solver.PanelSolver) {
	var (
		err error
		cfg = solver.Config{NumPanels: cp.NumPanels, VInf: cp.VInf}
	)
	if ps, err = solver.NewPanelSolver(cfg, raw); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}
