package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title      string    `yaml:"Title"`
	NumPanels  int       `yaml:"NumPanels"`
	VInf       float64   `yaml:"Vinf"`
	Alphas     []float64 `yaml:"Alphas"` // angles of attack in degrees
	GridXMin   float64   `yaml:"GridXMin"`
	GridXMax   float64   `yaml:"GridXMax"`
	GridYMin   float64   `yaml:"GridYMin"`
	GridYMax   float64   `yaml:"GridYMax"`
	GridRes    int       `yaml:"GridRes"`
	NACA       string    `yaml:"NACA"`       // analytic section code, used when no dat file is given
	AirfoilDat string    `yaml:"AirfoilDat"` // Selig format coordinate file
}

func DefaultCaseParameters() *CaseParameters {
	return &CaseParameters{
		Title:     "panel method case",
		NumPanels: 160,
		VInf:      1.,
		Alphas:    []float64{0.},
		GridXMin:  -0.5,
		GridXMax:  1.5,
		GridYMin:  -0.6,
		GridYMax:  0.6,
		GridRes:   50,
		NACA:      "0012",
	}
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8d\t\t= NumPanels\n", cp.NumPanels)
	fmt.Printf("%8.5f\t\t= Vinf\n", cp.VInf)
	fmt.Printf("%v\t\t= Alphas (deg)\n", cp.Alphas)
	fmt.Printf("[%8.3f,%8.3f] x [%8.3f,%8.3f] @ %d\t= Field grid\n",
		cp.GridXMin, cp.GridXMax, cp.GridYMin, cp.GridYMax, cp.GridRes)
	if len(cp.AirfoilDat) != 0 {
		fmt.Printf("[%s]\t\t= AirfoilDat\n", cp.AirfoilDat)
	} else {
		fmt.Printf("[NACA %s]\t\t= Section\n", cp.NACA)
	}
}
