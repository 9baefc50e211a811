package room

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// SurfaceID identifies what a ray struck: a wall kind or a named obstacle such as "gem".
type SurfaceID string

// NoSurface is reported for rays that never terminate on a surface
const NoSurface SurfaceID = ""

// Some surface kinds used by the default scene
const (
	MIRROR SurfaceID = "mirror"
	WALL   SurfaceID = "wall"
	GEM    SurfaceID = "gem"
	EYE    SurfaceID = "eye"
)

// Segment is an oriented line obstacle in the room.
//
// Segments are values and are never modified once built. Endpoints must not coincide.
type Segment struct {
	P1, P2 r2.Vec
	// Reflective segments bounce rays; all others absorb them
	Reflective bool
	Surface    SurfaceID
}

func NewSegment(p1, p2 r2.Vec, reflective bool, surface SurfaceID) Segment {
	return Segment{P1: p1, P2: p2, Reflective: reflective, Surface: surface}
}

// Normal returns the (unnormalized) vector orthogonal to the segment and to the left of P1->P2.
func (s Segment) Normal() r2.Vec {
	return r2.Vec{X: s.P1.Y - s.P2.Y, Y: s.P2.X - s.P1.X}
}

func (s Segment) Length() float64 {
	return r2.Norm(r2.Sub(s.P2, s.P1))
}

// Faces reports whether p lies on the side of the segment its normal points to.
func (s Segment) Faces(p r2.Vec) bool {
	return r2.Cross(r2.Sub(s.P2, s.P1), r2.Sub(p, s.P1)) > 0
}

// Degenerate reports whether the endpoints coincide, in which case the normal is undefined.
func (s Segment) Degenerate() bool {
	return r2.Norm(r2.Sub(s.P2, s.P1)) < EPSILON
}
