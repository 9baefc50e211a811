package room

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// V is a shorthand constructor for r2.Vec
func V(X, Y float64) r2.Vec {
	return r2.Vec{X: X, Y: Y}
}

// Tolerance used when comparing positions and directions produced by the tracer
const EPSILON = 1e-9

// reflect mirrors d across the line whose normal is n.
//
// The result does not depend on the sign or length of n.
func reflect(d, n r2.Vec) r2.Vec {
	u := r2.Unit(n)
	return r2.Sub(d, r2.Scale(2*r2.Dot(d, u), u))
}
