// Package readfiles handles the Selig-format airfoil coordinate files
// produced by XFOIL and most airfoil databases: an optional name line
// followed by one "x y" pair per line, trailing edge -> upper -> leading
// edge -> lower -> trailing edge.
package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/aerolab/panelflow/geometry"
)

func ReadAirfoilDat(filename string) (name string, pts []geometry.Point, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return "", nil, fmt.Errorf("unable to read airfoil file %s: %w", filename, err)
	}
	defer file.Close()
	return ParseAirfoilDat(file)
}

// ParseAirfoilDat tolerates blank lines and header text: any line that does
// not parse as two floats is skipped, and the first such line is kept as the
// section name.
func ParseAirfoilDat(r io.Reader) (name string, pts []geometry.Point, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		x, y, ok := parseCoordLine(line)
		if !ok {
			if len(name) == 0 {
				name = line
			}
			continue
		}
		pts = append(pts, geometry.Point{X: x, Y: y})
	}
	if err = scanner.Err(); err != nil {
		return "", nil, err
	}
	if len(pts) == 0 {
		return "", nil, fmt.Errorf("no coordinate pairs found")
	}
	return
}

func parseCoordLine(line string) (x, y float64, ok bool) {
	for _, r := range line {
		if unicode.IsLetter(r) {
			return 0, 0, false
		}
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}
	var err error
	if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, false
	}
	if y, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, false
	}
	return x, y, true
}

func WriteAirfoilDat(filename, name string, pts []geometry.Point) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to write airfoil file %s: %w", filename, err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\n", name)
	for _, p := range pts {
		fmt.Fprintf(w, " %.6f   %.6f\n", p.X, p.Y)
	}
	return w.Flush()
}
