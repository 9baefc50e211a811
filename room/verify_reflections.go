//go:build verify_reflections
// +build verify_reflections

package room

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Constants for verification
const (
	lengthEpsilon = 1e-7
	angleEpsilon  = 1e-7
)

func init() {
	fmt.Println("Angle verification enabled.")
}

func verifyReflectionLaw(incident, normal, reflected r2.Vec) {
	n := r2.Unit(normal)

	// 1. Angle of incidence should equal angle of reflection
	incidentAngle := math.Acos(math.Abs(r2.Dot(incident, n)))
	reflectedAngle := math.Acos(math.Abs(r2.Dot(reflected, n)))
	if !scalar.EqualWithinAbs(incidentAngle, reflectedAngle, angleEpsilon) {
		panic(fmt.Sprintf("angle of incidence %f does not match angle of reflection %f", incidentAngle, reflectedAngle))
	}

	// 2. The reflection should flip the normal component and keep the tangential one
	if !scalar.EqualWithinAbs(r2.Dot(incident, n), -r2.Dot(reflected, n), angleEpsilon) ||
		!scalar.EqualWithinAbs(r2.Cross(incident, n), r2.Cross(reflected, n), angleEpsilon) {
		panic("reflected direction is not the mirror image of the incident direction")
	}

	// 3. Reflected direction should maintain unit length
	if !scalar.EqualWithinAbs(r2.Norm(reflected), 1, lengthEpsilon) {
		panic("reflected direction is not a unit vector")
	}
}
