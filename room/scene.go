package room

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultCircleSides is the number of sides used to approximate circular obstacles
const DefaultCircleSides = 16

// Scene is the set of segments rays are cast against.
//
// Methods never modify the receiver; they return a new Scene instead.
//
// Endpoint order matters to anything that inspects normals: box walls are ordered so their
// normals face into the room and obstacle outlines are ordered so their normals face out
// of the obstacle.
type Scene struct {
	Segments []Segment
}

// BoxSpec describes a rectangular room with its top-left corner at the origin and an
// opening centered in the bottom wall.
type BoxSpec struct {
	Width, Height float64
	// Width of the gap in the bottom wall. Zero closes the box.
	Opening float64
	// Surface tag for the walls, defaults to MIRROR
	Surface SurfaceID
	// Absorptive walls when true
	Matte bool
}

func (s Scene) with(segments ...Segment) Scene {
	return Scene{Segments: append(slices.Clone(s.Segments), segments...)}
}

func (s Scene) AddWall(p1, p2 r2.Vec, reflective bool, surface SurfaceID) Scene {
	return s.with(NewSegment(p1, p2, reflective, surface))
}

// AddBox adds the four walls of a box. The bottom wall is split in two around the opening.
func (s Scene) AddBox(spec BoxSpec) Scene {
	surface := spec.Surface
	if surface == NoSurface {
		surface = MIRROR
	}
	reflective := !spec.Matte
	w, h := spec.Width, spec.Height
	gapStart := w/2 - spec.Opening/2
	gapEnd := w/2 + spec.Opening/2

	// With y pointing down, the left normal of each of these faces the interior
	walls := []Segment{
		NewSegment(V(0, 0), V(w, 0), reflective, surface),
		NewSegment(V(w, 0), V(w, h), reflective, surface),
		NewSegment(V(0, h), V(0, 0), reflective, surface),
	}
	if spec.Opening > 0 {
		walls = append(walls,
			NewSegment(V(gapStart, h), V(0, h), reflective, surface),
			NewSegment(V(w, h), V(gapEnd, h), reflective, surface),
		)
	} else {
		walls = append(walls, NewSegment(V(w, h), V(0, h), reflective, surface))
	}
	return s.with(walls...)
}

// AddCircle adds a regular polygon approximating a circle.
//
// sides below 3 fall back to DefaultCircleSides.
func (s Scene) AddCircle(center r2.Vec, radius float64, sides int, reflective bool, surface SurfaceID) Scene {
	if sides < 3 {
		sides = DefaultCircleSides
	}
	segments := make([]Segment, 0, sides)
	for i := 0; i < sides; i++ {
		thisAngle := float64(i) / float64(sides) * 2 * math.Pi
		nextAngle := float64(i+1) / float64(sides) * 2 * math.Pi
		// Each edge runs from the next vertex back to this one so its left normal points away from the center
		segments = append(segments, NewSegment(
			V(center.X+radius*math.Cos(nextAngle), center.Y+radius*math.Sin(nextAngle)),
			V(center.X+radius*math.Cos(thisAngle), center.Y+radius*math.Sin(thisAngle)),
			reflective, surface,
		))
	}
	return s.with(segments...)
}

// Without returns the scene with every segment tagged surface removed
func (s Scene) Without(surface SurfaceID) Scene {
	kept := make([]Segment, 0, len(s.Segments))
	for _, seg := range s.Segments {
		if seg.Surface != surface {
			kept = append(kept, seg)
		}
	}
	return Scene{Segments: kept}
}

// Surfaces lists the distinct surface tags in the scene, in order of first appearance
func (s Scene) Surfaces() []SurfaceID {
	var surfaces []SurfaceID
	for _, seg := range s.Segments {
		if !slices.Contains(surfaces, seg.Surface) {
			surfaces = append(surfaces, seg.Surface)
		}
	}
	return surfaces
}

func (s Scene) Trace(origin, direction r2.Vec, params TraceParams) *RayNode {
	return TraceWithParams(origin, direction, s.Segments, params)
}

// Eye is the point light source rays are cast from
type Eye struct {
	Position r2.Vec
	Radius   float64
	// Initial aim, relative to Position
	Aim r2.Vec
}

// Cast traces a ray from the center of the eye, ignoring the eye's own outline.
func (e Eye) Cast(scene Scene, direction r2.Vec, maxBounces int) *RayNode {
	return scene.Trace(e.Position, direction, TraceParams{
		MaxBounces:    maxBounces,
		IgnoreSurface: EYE,
	})
}

// Toward returns the direction from the eye to target, e.g. a clicked position.
func (e Eye) Toward(target r2.Vec) r2.Vec {
	return r2.Sub(target, e.Position)
}

// Default layout, in pixels with y pointing down
var (
	DefaultBox         = BoxSpec{Width: 150, Height: 100, Opening: 25}
	DefaultGemPosition = V(30, 20)
	DefaultGemRadius   = 7.5
	DefaultEye         = Eye{Position: V(75, 100), Radius: 7.5, Aim: V(100, 200)}
)

// DefaultScene is a mirrored box with an opening at the bottom, a matte wall, a gem and the eye.
func DefaultScene() Scene {
	return Scene{}.
		AddBox(DefaultBox).
		AddWall(V(20, 50), V(40, 50), false, WALL).
		AddCircle(DefaultGemPosition, DefaultGemRadius, DefaultCircleSides, false, GEM).
		AddCircle(DefaultEye.Position, DefaultEye.Radius, DefaultCircleSides, false, EYE)
}
