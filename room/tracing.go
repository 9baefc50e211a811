package room

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ProbeLength stands in for infinity: rays are tested as segments of this length.
const ProbeLength = 10000.0

// DefaultMaxBounces bounds the number of reflections a single cast may follow
const DefaultMaxBounces = 20

// TraceParams contains parameters to guide tracing
type TraceParams struct {
	// Maximum number of reflections to follow before giving up on the ray
	MaxBounces int
	// Segments tagged with this surface are ignored by the first leg.
	//
	// Used to cast from inside an obstacle, e.g. from the center of the eye.
	IgnoreSurface SurfaceID
}

// Outcome describes how a traced chain ends
type Outcome int

const (
	// The last leg struck an absorptive surface
	Terminated Outcome = iota
	// The last leg struck nothing
	Escaped
	// The last leg struck a mirror but the bounce budget was spent
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Terminated:
		return "terminated"
	case Escaped:
		return "escaped"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// RayNode is one straight leg of a traced ray.
//
// A chain of RayNodes is built in one go by Trace and never modified afterwards.
type RayNode struct {
	Origin r2.Vec
	// Unit vector
	Direction r2.Vec
	// Nearest hit, or the far end of the probe when the leg did not resolve on a surface
	Endpoint r2.Vec
	// True when the leg ended on an absorptive surface
	Terminated bool
	// The absorptive surface this leg ended on
	Surface SurfaceID
	// Continuation after a reflection, if any
	Child *RayNode

	exhausted bool
}

// Trace casts a ray from origin along direction and follows its reflections.
//
// direction must be non-zero. At most maxBounces reflections are followed, so the returned
// chain has at most maxBounces+1 legs.
func Trace(origin, direction r2.Vec, segments []Segment, maxBounces int) *RayNode {
	return TraceWithParams(origin, direction, segments, TraceParams{MaxBounces: maxBounces})
}

// TraceWithParams is Trace with the full set of tracing parameters
func TraceWithParams(origin, direction r2.Vec, segments []Segment, params TraceParams) *RayNode {
	ignore := func(i int) bool {
		return params.IgnoreSurface != NoSurface && segments[i].Surface == params.IgnoreSurface
	}
	return propagate(origin, r2.Unit(direction), segments, params.MaxBounces, 0, ignore)
}

type hit struct {
	index int
	point r2.Vec
	dist  float64
}

// nearestHit finds the closest segment crossed by the probe. Ties keep the earliest segment.
func nearestHit(origin, probeEnd r2.Vec, segments []Segment, ignore func(int) bool) (hit, bool) {
	nearest := hit{index: -1, dist: math.Inf(1)}
	for i, seg := range segments {
		if ignore(i) {
			continue
		}
		result := IntersectSegments(origin, probeEnd, seg.P1, seg.P2)
		if result.Kind != Intersecting {
			continue
		}
		dist := r2.Norm(r2.Sub(result.Point, origin))
		if dist < nearest.dist {
			nearest = hit{index: i, point: result.Point, dist: dist}
		}
	}
	return nearest, nearest.index >= 0
}

func propagate(origin, direction r2.Vec, segments []Segment, maxBounces, bounces int, ignore func(int) bool) *RayNode {
	probeEnd := r2.Add(origin, r2.Scale(ProbeLength, direction))
	node := &RayNode{
		Origin:    origin,
		Direction: direction,
		Endpoint:  probeEnd,
	}

	h, ok := nearestHit(origin, probeEnd, segments, ignore)
	if !ok {
		return node
	}
	struck := segments[h.index]

	if !struck.Reflective {
		node.Endpoint = h.point
		node.Terminated = true
		node.Surface = struck.Surface
		return node
	}

	if bounces >= maxBounces {
		node.exhausted = true
		return node
	}

	node.Endpoint = h.point
	reflected := reflect(direction, struck.Normal())
	verifyReflectionLaw(direction, struck.Normal(), reflected)
	node.Child = propagate(h.point, reflected, segments, maxBounces, bounces+1, func(i int) bool {
		return i == h.index
	})
	return node
}

// Length is the distance covered by this leg alone
func (n *RayNode) Length() float64 {
	return r2.Norm(r2.Sub(n.Endpoint, n.Origin))
}

// TotalLength is the distance covered by this leg and every leg after it.
//
// Chains that escape include the probe length of their last leg.
func (n *RayNode) TotalLength() float64 {
	total := 0.0
	for leg := n; leg != nil; leg = leg.Child {
		total += leg.Length()
	}
	return total
}

// FinalSurface returns the surface the chain terminated on, if it terminated at all.
func (n *RayNode) FinalSurface() (SurfaceID, bool) {
	last := n.Last()
	if last.Terminated {
		return last.Surface, true
	}
	return NoSurface, false
}

// Last returns the final leg of the chain
func (n *RayNode) Last() *RayNode {
	leg := n
	for leg.Child != nil {
		leg = leg.Child
	}
	return leg
}

// Legs returns every leg of the chain, starting with n
func (n *RayNode) Legs() []*RayNode {
	var legs []*RayNode
	for leg := n; leg != nil; leg = leg.Child {
		legs = append(legs, leg)
	}
	return legs
}

// Bounces is the number of reflections in the chain
func (n *RayNode) Bounces() int {
	return len(n.Legs()) - 1
}

// Escaped reports whether the chain ran off without resolving on a surface.
//
// Chains that ran out of bounces count as escaped.
func (n *RayNode) Escaped() bool {
	return !n.Last().Terminated
}

func (n *RayNode) Outcome() Outcome {
	last := n.Last()
	switch {
	case last.Terminated:
		return Terminated
	case last.exhausted:
		return Exhausted
	default:
		return Escaped
	}
}

// ContinuationEnd is where the ray would end up if it travelled TotalLength in a straight line.
//
// This is the ray as it appears through the mirrors.
func (n *RayNode) ContinuationEnd() r2.Vec {
	return r2.Add(n.Origin, r2.Scale(n.TotalLength(), n.Direction))
}
