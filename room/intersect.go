package room

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// IntersectionKind classifies how two segments relate to each other
type IntersectionKind int

const (
	None IntersectionKind = iota
	Intersecting
	Colinear
	Parallel
)

func (k IntersectionKind) String() string {
	switch k {
	case Intersecting:
		return "intersecting"
	case Colinear:
		return "colinear"
	case Parallel:
		return "parallel"
	default:
		return "none"
	}
}

const parallelEpsilon = 1e-10

// Intersection is the result of testing segment a1-a2 against segment b1-b2
type Intersection struct {
	Kind IntersectionKind
	// Only set when Kind is Intersecting
	Point r2.Vec
	// Position of Point along a1-a2, in [0, 1]
	T float64
}

// IntersectSegments tests two finite segments against each other.
//
// Colinear and parallel segments never produce a point, even when they overlap.
func IntersectSegments(a1, a2, b1, b2 r2.Vec) Intersection {
	da := r2.Sub(a2, a1)
	db := r2.Sub(b2, b1)
	w := r2.Sub(b1, a1)

	denom := r2.Cross(da, db)
	if math.Abs(denom) < parallelEpsilon {
		if math.Abs(r2.Cross(w, da)) < parallelEpsilon {
			return Intersection{Kind: Colinear}
		}
		return Intersection{Kind: Parallel}
	}

	t := r2.Cross(w, db) / denom
	u := r2.Cross(w, da) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{Kind: None}
	}
	return Intersection{
		Kind:  Intersecting,
		Point: r2.Add(a1, r2.Scale(t, da)),
		T:     t,
	}
}
