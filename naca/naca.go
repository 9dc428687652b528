// Package naca generates analytic NACA section contours in the
// trailing-edge -> upper -> leading-edge -> lower -> trailing-edge traversal
// used by the panel solver, nondimensionalized to unit chord.
package naca

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aerolab/panelflow/geometry"
	"github.com/aerolab/panelflow/utils"
)

// Section dispatches on code length: 4-digit (e.g. "2412") or the 230xx
// class of the 5-digit series (e.g. "23012"). nStations is the chordwise
// station count per surface before panel resampling.
func Section(code string, nStations int) ([]geometry.Point, error) {
	switch len(code) {
	case 4:
		return Section4Digit(code, nStations)
	case 5:
		return Section5Digit(code, nStations)
	}
	return nil, fmt.Errorf("unsupported NACA code %q: need 4 or 5 digits", code)
}

// Section4Digit evaluates the classic 4-digit thickness and camber forms.
func Section4Digit(code string, nStations int) ([]geometry.Point, error) {
	digits, err := parseDigits(code, 4)
	if err != nil {
		return nil, err
	}
	var (
		m = float64(digits[0]) / 100.
		p = float64(digits[1]) / 10.
		t = float64(10*digits[2]+digits[3]) / 100.
		x = chordStations(nStations)
	)
	camber := func(xi float64) (yc, dycdx float64) {
		if m == 0 {
			return 0, 0
		}
		if xi < p {
			yc = (m / utils.POW(p, 2)) * (2.*p*xi - xi*xi)
			dycdx = (2. * m / utils.POW(p, 2)) * (p - xi)
		} else {
			yc = (m / utils.POW(1.-p, 2)) * ((1. - 2.*p) + 2.*p*xi - xi*xi)
			dycdx = (2. * m / utils.POW(1.-p, 2)) * (p - xi)
		}
		return
	}
	return assemble(x, t, camber), nil
}

// Section5Digit evaluates the 230xx mean line with the standard thickness
// form. Constants per Abbott & Von Doenhoff for design CL = 0.3.
func Section5Digit(code string, nStations int) ([]geometry.Point, error) {
	digits, err := parseDigits(code, 5)
	if err != nil {
		return nil, err
	}
	if digits[0] != 2 || digits[1] != 3 || digits[2] != 0 {
		return nil, fmt.Errorf("unsupported 5-digit NACA code %q: only the 230xx mean line is implemented", code)
	}
	const (
		m  = 0.2025
		p  = 0.15
		k1 = 15.957
	)
	var (
		t = float64(10*digits[3]+digits[4]) / 100.
		x = chordStations(nStations)
	)
	camber := func(xi float64) (yc, dycdx float64) {
		if xi < p {
			yc = (k1 / 6.) * (utils.POW(xi, 3) - 3.*m*xi*xi + m*m*(3.-m)*xi)
			dycdx = (k1 / 6.) * (3.*xi*xi - 6.*m*xi + m*m*(3.-m))
		} else {
			yc = (k1 * utils.POW(m, 3) / 6.) * (1. - xi)
			dycdx = -(k1 * utils.POW(m, 3) / 6.)
		}
		return
	}
	return assemble(x, t, camber), nil
}

// thickness is the standard NACA distribution for thickness ratio t.
func thickness(xi, t float64) float64 {
	return 5. * t * (0.2969*math.Sqrt(xi) - 0.1260*xi - 0.3516*utils.POW(xi, 2) +
		0.2843*utils.POW(xi, 3) - 0.1015*utils.POW(xi, 4))
}

// chordStations clusters stations at both chord ends with cosine spacing.
func chordStations(nStations int) []float64 {
	n := nStations/2 + 1
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		beta := math.Pi * float64(i) / float64(n-1)
		x[i] = 0.5 * (1. - math.Cos(beta))
	}
	return x
}

// assemble offsets the thickness normal to the camber line and stitches the
// surfaces into a single TE->upper->LE->lower->TE loop.
func assemble(x []float64, t float64, camber func(float64) (float64, float64)) []geometry.Point {
	var (
		n      = len(x)
		xu, yu = make([]float64, n), make([]float64, n)
		xl, yl = make([]float64, n), make([]float64, n)
	)
	for i, xi := range x {
		yt := thickness(xi, t)
		yc, dycdx := camber(xi)
		theta := math.Atan(dycdx)
		xu[i] = xi - yt*math.Sin(theta)
		yu[i] = yc + yt*math.Cos(theta)
		xl[i] = xi + yt*math.Sin(theta)
		yl[i] = yc - yt*math.Cos(theta)
	}
	pts := make([]geometry.Point, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- { // upper surface, TE to LE
		pts = append(pts, geometry.Point{X: xu[i], Y: yu[i]})
	}
	for i := 1; i < n; i++ { // lower surface, LE to TE
		pts = append(pts, geometry.Point{X: xl[i], Y: yl[i]})
	}
	return pts
}

func parseDigits(code string, want int) ([]int, error) {
	if len(code) != want {
		return nil, fmt.Errorf("NACA code %q: want %d digits", code, want)
	}
	digits := make([]int, want)
	for i, r := range code {
		d, err := strconv.Atoi(string(r))
		if err != nil {
			return nil, fmt.Errorf("NACA code %q: non-digit %q", code, r)
		}
		digits[i] = d
	}
	return digits, nil
}
