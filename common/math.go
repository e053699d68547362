package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns the unit vector from `from` towards `to` scaled by speed.
// ok is false when the points coincide and no direction exists.
func Direction(from, to cp.Vector, speed float64) (cp.Vector, bool) {
	d := to.Sub(from)
	length := d.Length()
	if length == 0 {
		return cp.Vector{}, false
	}
	return d.Mult(speed / length), true
}
