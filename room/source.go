package room

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Shot is a single direction cast from the eye
type Shot struct {
	// Angle in degrees, measured from +X towards +Y
	Angle     float64
	Direction r2.Vec
}

// Direction converts an angle in degrees to a unit direction
func Direction(angle float64) r2.Vec {
	rads := angle / 180 * math.Pi
	return r2.Vec{X: math.Cos(rads), Y: math.Sin(rads)}
}

// Angle returns the angle of d in degrees, in (-180, 180]
func Angle(d r2.Vec) float64 {
	return math.Atan2(d.Y, d.X) / math.Pi * 180
}

// Sample returns numSamples shots spread evenly over [start, start+span) degrees.
func (e Eye) Sample(numSamples int, start, span float64) []Shot {
	shots := make([]Shot, 0, numSamples)
	for i := 0; i < numSamples; i++ {
		angle := start + span*(float64(i)/float64(numSamples))
		shots = append(shots, Shot{
			Angle:     angle,
			Direction: Direction(angle),
		})
	}
	return shots
}
