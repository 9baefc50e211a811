// Package tiling lays out the mirror images of a rectangular room.
//
// The real room is cell (0, 0) and spans [0, Width] x [0, Height]. Cell (i, j) holds the
// room reflected across every grid line between it and the real room, so cells with an
// odd i are flipped horizontally and cells with an odd j are flipped vertically.
// A ray bouncing around the real room is a straight line through this grid.
package tiling

import (
	"math"
	"sort"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/spatial/r2"

	goroom "github.com/jdginn/go-mirror-box/room"
)

// Grid is a (2*Reach+1) x (2*Reach+1) block of cells centered on the real room
type Grid struct {
	Width, Height float64
	// Number of cells on each side of the real room
	Reach int
}

type Cell struct {
	I, J         int
	FlipX, FlipY bool
	Bounds       geom.Rect
}

// Real reports whether this is the room itself rather than a reflection
func (c Cell) Real() bool {
	return c.I == 0 && c.J == 0
}

func NewGrid(width, height float64, reach int) Grid {
	return Grid{Width: width, Height: height, Reach: reach}
}

func odd(i int) bool {
	return i&1 == 1
}

func coord(v r2.Vec) geom.Coord {
	return geom.Coord{X: v.X, Y: v.Y}
}

func (g Grid) Contains(i, j int) bool {
	return i >= -g.Reach && i <= g.Reach && j >= -g.Reach && j <= g.Reach
}

func (g Grid) Cell(i, j int) Cell {
	return Cell{
		I:     i,
		J:     j,
		FlipX: odd(i),
		FlipY: odd(j),
		Bounds: geom.Rect{
			Min: geom.Coord{X: float64(i) * g.Width, Y: float64(j) * g.Height},
			Max: geom.Coord{X: float64(i+1) * g.Width, Y: float64(j+1) * g.Height},
		},
	}
}

// Cells lists every cell of the grid, row by row
func (g Grid) Cells() []Cell {
	var cells []Cell
	for j := -g.Reach; j <= g.Reach; j++ {
		for i := -g.Reach; i <= g.Reach; i++ {
			cells = append(cells, g.Cell(i, j))
		}
	}
	return cells
}

// CellAt returns the indices of the cell containing p
func (g Grid) CellAt(p r2.Vec) (int, int) {
	return int(math.Floor(p.X / g.Width)), int(math.Floor(p.Y / g.Height))
}

// Image returns where a point of the real room appears in cell (i, j)
func (g Grid) Image(p r2.Vec, i, j int) r2.Vec {
	x, y := p.X, p.Y
	if odd(i) {
		x = g.Width - x
	}
	if odd(j) {
		y = g.Height - y
	}
	return r2.Vec{X: float64(i)*g.Width + x, Y: float64(j)*g.Height + y}
}

// Fold maps a point anywhere in the plane back to the point of the real room it is an image of.
func (g Grid) Fold(p r2.Vec) r2.Vec {
	i, j := g.CellAt(p)
	x := p.X - float64(i)*g.Width
	y := p.Y - float64(j)*g.Height
	if odd(i) {
		x = g.Width - x
	}
	if odd(j) {
		y = g.Height - y
	}
	return r2.Vec{X: x, Y: y}
}

// FlipAxis tells which way the image flips across a grid line
type FlipAxis int

const (
	// Crossing a vertical grid line mirrors the room left to right
	Horizontal FlipAxis = iota
	// Crossing a horizontal grid line mirrors the room top to bottom
	Vertical
)

// Flip marks where a ray crosses from one cell into its mirror image
type Flip struct {
	At   geom.Coord
	Axis FlipAxis
}

// Traversal lists the cells a straight ray passes through
type Traversal struct {
	Cells []Cell
	Flips []Flip
	// Bounding box of the ray
	Bounds geom.Rect
}

// Contains reports whether the traversal passes through cell (i, j)
func (t Traversal) Contains(i, j int) bool {
	for _, c := range t.Cells {
		if c.I == i && c.J == j {
			return true
		}
	}
	return false
}

// Traverse finds the cells crossed by the straight line from -> to.
//
// The ray is tested against every interior grid line; each crossing marks the cells on
// both sides of the line. The cell containing from is always included when it is part of
// the grid. Crossings outside the grid are ignored.
func (g Grid) Traverse(from, to r2.Vec) Traversal {
	seen := map[[2]int]bool{}
	mark := func(i, j int) {
		if g.Contains(i, j) {
			seen[[2]int{i, j}] = true
		}
	}
	mark(g.CellAt(from))

	var flips []Flip
	top := float64(-g.Reach) * g.Height
	bottom := float64(g.Reach+1) * g.Height
	left := float64(-g.Reach) * g.Width
	right := float64(g.Reach+1) * g.Width

	for k := -g.Reach + 1; k <= g.Reach; k++ {
		x := float64(k) * g.Width
		result := goroom.IntersectSegments(from, to, r2.Vec{X: x, Y: top}, r2.Vec{X: x, Y: bottom})
		if result.Kind != goroom.Intersecting {
			continue
		}
		j := int(math.Floor(result.Point.Y / g.Height))
		mark(k, j)
		mark(k-1, j)
		flips = append(flips, Flip{
			At:   geom.Coord{X: x, Y: float64(j)*g.Height + g.Height/2},
			Axis: Horizontal,
		})
	}
	for k := -g.Reach + 1; k <= g.Reach; k++ {
		y := float64(k) * g.Height
		result := goroom.IntersectSegments(from, to, r2.Vec{X: left, Y: y}, r2.Vec{X: right, Y: y})
		if result.Kind != goroom.Intersecting {
			continue
		}
		i := int(math.Floor(result.Point.X / g.Width))
		mark(i, k)
		mark(i, k-1)
		flips = append(flips, Flip{
			At:   geom.Coord{X: float64(i)*g.Width + g.Width/2, Y: y},
			Axis: Vertical,
		})
	}

	keys := make([][2]int, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][1] != keys[b][1] {
			return keys[a][1] < keys[b][1]
		}
		return keys[a][0] < keys[b][0]
	})
	cells := make([]Cell, len(keys))
	for n, k := range keys {
		cells[n] = g.Cell(k[0], k[1])
	}

	bounds := geom.Rect{Min: coord(from), Max: coord(from)}
	bounds.ExpandToContainCoord(coord(to))

	return Traversal{Cells: cells, Flips: flips, Bounds: bounds}
}

// TraverseRay follows the straight continuation of a traced chain through the grid
func (g Grid) TraverseRay(node *goroom.RayNode) Traversal {
	return g.Traverse(node.Origin, node.ContinuationEnd())
}

// Unfold returns the point reached after travelling distance along the unfolded, straight
// version of node. Folding it gives the matching point of the bouncing path in an all-mirror room.
func Unfold(node *goroom.RayNode, distance float64) r2.Vec {
	return r2.Add(node.Origin, r2.Scale(distance, node.Direction))
}
