package room

import (
	lin "github.com/sgreben/piecewiselinear"
	"gonum.org/v1/gonum/spatial/r2"
)

// Points returns the polyline followed by the chain: the origin and then every leg's endpoint.
func (n *RayNode) Points() []r2.Vec {
	points := []r2.Vec{n.Origin}
	for leg := n; leg != nil; leg = leg.Child {
		points = append(points, leg.Endpoint)
	}
	return points
}

// pathFunctions maps distance travelled along the chain to the x and y coordinates reached.
//
// Zero-length legs (bounces in a corner) are dropped since the knots must be strictly increasing.
func (n *RayNode) pathFunctions() (x, y lin.Function, total float64) {
	dist := []float64{0}
	xs := []float64{n.Origin.X}
	ys := []float64{n.Origin.Y}
	for leg := n; leg != nil; leg = leg.Child {
		length := leg.Length()
		if length < EPSILON {
			continue
		}
		total += length
		dist = append(dist, total)
		xs = append(xs, leg.Endpoint.X)
		ys = append(ys, leg.Endpoint.Y)
	}
	return lin.Function{X: dist, Y: xs}, lin.Function{X: dist, Y: ys}, total
}

// PointAt returns the position reached after travelling distance along the chain.
//
// distance is clamped to [0, TotalLength].
func (n *RayNode) PointAt(distance float64) r2.Vec {
	if distance <= 0 {
		return n.Origin
	}
	x, y, total := n.pathFunctions()
	if distance >= total {
		return n.Last().Endpoint
	}
	return r2.Vec{X: x.At(distance), Y: y.At(distance)}
}

// PointsAt samples PointAt at each of the given distances
func (n *RayNode) PointsAt(distances []float64) []r2.Vec {
	x, y, total := n.pathFunctions()
	points := make([]r2.Vec, len(distances))
	for i, d := range distances {
		switch {
		case d <= 0:
			points[i] = n.Origin
		case d >= total:
			points[i] = n.Last().Endpoint
		default:
			points[i] = r2.Vec{X: x.At(d), Y: y.At(d)}
		}
	}
	return points
}
