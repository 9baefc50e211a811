package room

import (
	"math"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r2"
)

// Most of this code is taken from https://github.com/fogleman/choppy/tree/master with some modifications

// Plane is used to cut a 2D floor plan out of a 3D mesh
type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
}

// HorizontalPlane returns the plane at the given height, facing up
func HorizontalPlane(height float64) Plane {
	return Plane{
		Point:  pt.Vector{X: 0, Y: 0, Z: height},
		Normal: pt.Vector{X: 0, Y: 0, Z: 1},
	}
}

// To2D drops the Z component of a point on a horizontal plane
func To2D(v pt.Vector) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

type Path []pt.Vector

// Slice edges computed from neighboring triangles differ by rounding, so points are snapped
// before they are compared.
const snapResolution = 1e-6

func snap(v pt.Vector) pt.Vector {
	round := func(f float64) float64 {
		return math.Round(f/snapResolution) * snapResolution
	}
	return pt.Vector{X: round(v.X), Y: round(v.Y), Z: round(v.Z)}
}

func less(a, b pt.Vector) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// joinPaths chains edges end to start. Edges are only ever followed forwards so the
// orientation of every edge survives the join.
func joinPaths(paths []Path) []Path {
	frontLookup := make(map[pt.Vector]Path, len(paths))
	backs := make(map[pt.Vector]bool, len(paths))
	for _, path := range paths {
		frontLookup[path[0]] = path
		backs[path[len(path)-1]] = true
	}
	var result []Path
	for len(frontLookup) > 0 {
		// Prefer starting open chains at their true start. Picking the lowest point keeps
		// segment order, and so the tracer's tie-break, stable between runs.
		var v pt.Vector
		found := false
		for k := range frontLookup {
			if !backs[k] && (!found || less(k, v)) {
				v, found = k, true
			}
		}
		if !found {
			for k := range frontLookup {
				if !found || less(k, v) {
					v, found = k, true
				}
			}
		}
		path := Path{v}
		for {
			p, ok := frontLookup[v]
			if !ok {
				break
			}
			delete(frontLookup, v)
			v = p[len(p)-1]
			path = append(path, v)
		}
		result = append(result, path)
	}
	return result
}

// SliceMesh cuts every triangle of m with the plane and joins the resulting edges into paths.
func (p Plane) SliceMesh(m *pt.Mesh) []Path {
	var paths []Path
	for _, t := range m.Triangles {
		if v1, v2, ok := p.IntersectTriangle(t); ok {
			paths = append(paths, Path{snap(v1), snap(v2)})
		}
	}
	paths = joinPaths(paths)
	return paths
}

// MeshToSegments slices m and returns one segment per straight run of the outline.
//
// Edges are oriented from the triangle winding, so segment normals face out of the solid.
func (p Plane) MeshToSegments(m *pt.Mesh, reflective bool, surface SurfaceID) []Segment {
	var segments []Segment
	for _, path := range p.SliceMesh(m) {
		points := simplify(path)
		for i := 0; i < len(points)-1; i++ {
			seg := NewSegment(To2D(points[i]), To2D(points[i+1]), reflective, surface)
			if !seg.Degenerate() {
				segments = append(segments, seg)
			}
		}
	}
	return segments
}

// simplify drops points lying on the straight line between their neighbors.
//
// Rays hitting the shared endpoint of two colinear pieces would otherwise bounce twice in place.
func simplify(path Path) Path {
	if len(path) < 3 {
		return path
	}
	result := Path{path[0]}
	for i := 1; i < len(path)-1; i++ {
		prev := result[len(result)-1]
		a := path[i].Sub(prev).Normalize()
		b := path[i+1].Sub(path[i]).Normalize()
		if a.Dot(b) > 0 && a.Cross(b).Length() < 1e-9 {
			continue
		}
		result = append(result, path[i])
	}
	return append(result, path[len(path)-1])
}

func (p Plane) intersectSegment(v0, v1 pt.Vector) (pt.Vector, bool) {
	u := v1.Sub(v0)
	w := v0.Sub(p.Point)
	d := p.Normal.Dot(u)
	if d > -1e-9 && d < 1e-9 {
		return pt.Vector{}, false
	}
	n := -p.Normal.Dot(w)
	t := n / d
	if t < 0 || t > 1 {
		return pt.Vector{}, false
	}
	return v0.Add(u.MulScalar(t)), true
}

func (p Plane) IntersectTriangle(t *pt.Triangle) (pt.Vector, pt.Vector, bool) {
	v1, ok1 := p.intersectSegment(t.V1, t.V2)
	v2, ok2 := p.intersectSegment(t.V2, t.V3)
	v3, ok3 := p.intersectSegment(t.V3, t.V1)
	var p1, p2 pt.Vector
	if ok1 && ok2 {
		p1, p2 = v1, v2
	} else if ok1 && ok3 {
		p1, p2 = v1, v3
	} else if ok2 && ok3 {
		p1, p2 = v2, v3
	} else {
		return pt.Vector{}, pt.Vector{}, false
	}
	if p1 == p2 {
		return pt.Vector{}, pt.Vector{}, false
	}
	n := p2.Sub(p1).Cross(p.Normal)
	if n.Dot(t.Normal()) < 0 {
		return p1, p2, true
	} else {
		return p2, p1, true
	}
}
