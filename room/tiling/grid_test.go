package tiling

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	goroom "github.com/jdginn/go-mirror-box/room"
)

func TestCell(t *testing.T) {
	g := NewGrid(100, 50, 2)
	tests := []struct {
		i, j         int
		flipX, flipY bool
		min, max     geom.Coord
	}{
		{0, 0, false, false, geom.Coord{X: 0, Y: 0}, geom.Coord{X: 100, Y: 50}},
		{1, 0, true, false, geom.Coord{X: 100, Y: 0}, geom.Coord{X: 200, Y: 50}},
		{-1, 0, true, false, geom.Coord{X: -100, Y: 0}, geom.Coord{X: 0, Y: 50}},
		{0, -2, false, false, geom.Coord{X: 0, Y: -100}, geom.Coord{X: 100, Y: -50}},
		{-1, 1, true, true, geom.Coord{X: -100, Y: 50}, geom.Coord{X: 0, Y: 100}},
	}
	for _, tt := range tests {
		c := g.Cell(tt.i, tt.j)
		assert.Equal(t, tt.flipX, c.FlipX, "cell %d,%d", tt.i, tt.j)
		assert.Equal(t, tt.flipY, c.FlipY, "cell %d,%d", tt.i, tt.j)
		assert.Equal(t, tt.min, c.Bounds.Min, "cell %d,%d", tt.i, tt.j)
		assert.Equal(t, tt.max, c.Bounds.Max, "cell %d,%d", tt.i, tt.j)
	}
	assert.True(t, g.Cell(0, 0).Real())
	assert.False(t, g.Cell(0, 1).Real())
	assert.Len(t, g.Cells(), 25)
	assert.True(t, g.Contains(-2, 2))
	assert.False(t, g.Contains(3, 0))
}

func TestImageAndFold(t *testing.T) {
	g := NewGrid(100, 50, 3)
	p := r2.Vec{X: 20, Y: 10}

	assert.Equal(t, r2.Vec{X: 180, Y: 10}, g.Image(p, 1, 0))
	assert.Equal(t, r2.Vec{X: 20, Y: -10}, g.Image(p, 0, -1))
	assert.Equal(t, r2.Vec{X: -20, Y: 90}, g.Image(p, -1, 1))
	assert.Equal(t, r2.Vec{X: 220, Y: 110}, g.Image(p, 2, 2))

	for _, c := range g.Cells() {
		img := g.Image(p, c.I, c.J)
		i, j := g.CellAt(img)
		assert.Equal(t, [2]int{c.I, c.J}, [2]int{i, j})
		folded := g.Fold(img)
		assert.InDelta(t, p.X, folded.X, 1e-9)
		assert.InDelta(t, p.Y, folded.Y, 1e-9)
	}
}

func TestUnfoldMatchesBouncingPath(t *testing.T) {
	const width, height = 100.0, 50.0
	scene := goroom.Scene{}.AddBox(goroom.BoxSpec{Width: width, Height: height})
	node := scene.Trace(goroom.V(10, 10), goroom.V(1, 0.37), goroom.TraceParams{MaxBounces: 12})
	g := NewGrid(width, height, 0)

	reflected := node.TotalLength() - node.Last().Length()
	require.Greater(t, reflected, 0.0)
	for s := 0.0; s < reflected; s += 3.7 {
		want := node.PointAt(s)
		got := g.Fold(Unfold(node, s))
		assert.InDelta(t, want.X, got.X, 1e-6, "distance %v", s)
		assert.InDelta(t, want.Y, got.Y, 1e-6, "distance %v", s)
	}
}

func TestTraverse(t *testing.T) {
	g := NewGrid(100, 50, 2)

	traversal := g.Traverse(r2.Vec{X: 50, Y: 25}, r2.Vec{X: 250, Y: 25})
	var cells [][2]int
	for _, c := range traversal.Cells {
		cells = append(cells, [2]int{c.I, c.J})
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}}, cells)
	require.Len(t, traversal.Flips, 2)
	for _, f := range traversal.Flips {
		assert.Equal(t, Horizontal, f.Axis)
	}
	assert.Equal(t, geom.Coord{X: 100, Y: 25}, traversal.Flips[0].At)
	assert.Equal(t, geom.Coord{X: 50, Y: 25}, traversal.Bounds.Min)
	assert.Equal(t, geom.Coord{X: 250, Y: 25}, traversal.Bounds.Max)

	// Crossings beyond the grid are dropped
	far := g.Traverse(r2.Vec{X: 50, Y: 25}, r2.Vec{X: 50, Y: 10000})
	assert.Len(t, far.Cells, 3)
	assert.True(t, far.Contains(0, 2))
	assert.False(t, far.Contains(0, 3))
	for _, f := range far.Flips {
		assert.Equal(t, Vertical, f.Axis)
	}

	// A ray that stays put only covers its own cell
	still := g.Traverse(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 20, Y: 20})
	assert.Len(t, still.Cells, 1)
	assert.True(t, still.Contains(0, 0))
}

func TestTraverseRay(t *testing.T) {
	const width, height = 100.0, 50.0
	scene := goroom.Scene{}.AddBox(goroom.BoxSpec{Width: width, Height: height})
	node := scene.Trace(goroom.V(10, 10), goroom.V(1, 0.37), goroom.TraceParams{MaxBounces: 4})
	g := NewGrid(width, height, 2)
	traversal := g.TraverseRay(node)

	assert.True(t, traversal.Contains(0, 0))
	reflected := node.TotalLength() - node.Last().Length()
	for s := 0.0; s < reflected; s += 1.0 {
		i, j := g.CellAt(Unfold(node, s))
		if g.Contains(i, j) {
			assert.True(t, traversal.Contains(i, j), "cell %d,%d at distance %v", i, j, s)
		}
	}
}
