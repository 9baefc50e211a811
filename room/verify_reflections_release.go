//go:build !verify_reflections
// +build !verify_reflections

package room

import "gonum.org/v1/gonum/spatial/r2"

// Empty stub that will be optimized out
func verifyReflectionLaw(incident, normal, reflected r2.Vec) {
	// Empty function will be entirely optimized out in release builds
}
