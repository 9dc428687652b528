package solver

import "math"

// Freestream holds the far-field conditions for one solve.
type Freestream struct {
	VInf     float64 // freestream speed
	AlphaDeg float64 // angle of attack in degrees
}

func (fs Freestream) AlphaRad() float64 {
	return fs.AlphaDeg * math.Pi / 180.
}

// Velocity is the freestream velocity vector.
func (fs Freestream) Velocity() (u, v float64) {
	alpha := fs.AlphaRad()
	u = fs.VInf * math.Cos(alpha)
	v = fs.VInf * math.Sin(alpha)
	return
}
