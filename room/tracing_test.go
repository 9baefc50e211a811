package room

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func assertVec(t *testing.T, want, got r2.Vec, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
}

func closedBox() []Segment {
	return Scene{}.AddBox(BoxSpec{Width: 100, Height: 50}).Segments
}

func TestTraceEscape(t *testing.T) {
	node := Trace(V(0, 0), V(3, 4), nil, DefaultMaxBounces)

	assert.Nil(t, node.Child)
	assert.False(t, node.Terminated)
	assertVec(t, V(6000, 8000), node.Endpoint, 1e-6)
	assert.InDelta(t, ProbeLength, node.TotalLength(), 1e-6)
	assert.Equal(t, Escaped, node.Outcome())
	assert.True(t, node.Escaped())

	surface, ok := node.FinalSurface()
	assert.False(t, ok)
	assert.Equal(t, NoSurface, surface)
}

func TestTraceSimpleBounce(t *testing.T) {
	mirror := []Segment{NewSegment(V(-100, 10), V(100, 10), true, MIRROR)}
	node := Trace(V(0, 0), V(0, 1), mirror, DefaultMaxBounces)

	assertVec(t, V(0, 10), node.Endpoint, 1e-9)
	assert.InDelta(t, 10, node.Length(), 1e-9)
	require.NotNil(t, node.Child)
	assert.False(t, node.Terminated)

	child := node.Child
	assertVec(t, V(0, 10), child.Origin, 1e-9)
	assertVec(t, V(0, -1), child.Direction, 1e-9)
	// The mirror just struck is not hit again at distance zero
	assert.Nil(t, child.Child)
	assertVec(t, V(0, 10-ProbeLength), child.Endpoint, 1e-6)
	assert.Equal(t, 1, node.Bounces())
	assert.Equal(t, Escaped, node.Outcome())
}

func TestTraceObliqueMirror(t *testing.T) {
	mirror := []Segment{NewSegment(V(-10, -10), V(10, 10), true, MIRROR)}
	node := Trace(V(5, 0), V(-1, 0), mirror, DefaultMaxBounces)

	assertVec(t, V(0, 0), node.Endpoint, 1e-9)
	require.NotNil(t, node.Child)
	assertVec(t, V(0, -1), node.Child.Direction, 1e-9)
}

func TestTraceReflectionLaw(t *testing.T) {
	tests := []struct {
		name      string
		segment   Segment
		direction r2.Vec
	}{
		{"horizontal", NewSegment(V(-50, 10), V(50, 10), true, MIRROR), V(1, 2)},
		{"vertical", NewSegment(V(10, -50), V(10, 50), true, MIRROR), V(3, -1)},
		{"slanted", NewSegment(V(0, 20), V(20, 0), true, MIRROR), V(1, 0.3)},
		{"reversed endpoints", NewSegment(V(20, 0), V(0, 20), true, MIRROR), V(1, 0.3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Trace(V(0, 0), tt.direction, []Segment{tt.segment}, 1)
			require.NotNil(t, node.Child)
			n := r2.Unit(tt.segment.Normal())
			in, out := node.Direction, node.Child.Direction

			assert.InDelta(t, 1, r2.Norm(out), 1e-9)
			assert.InDelta(t, r2.Dot(in, n), -r2.Dot(out, n), 1e-9)
			assert.InDelta(t, r2.Cross(in, n), r2.Cross(out, n), 1e-9)
		})
	}
}

func TestTraceTerminatingObstacle(t *testing.T) {
	center := V(30, 20)
	scene := Scene{}.AddCircle(center, 10, 8, false, GEM)
	node := scene.Trace(V(0, 0), r2.Sub(center, V(0, 0)), TraceParams{MaxBounces: DefaultMaxBounces})

	assert.True(t, node.Terminated)
	assert.Nil(t, node.Child)
	surface, ok := node.FinalSurface()
	assert.True(t, ok)
	assert.Equal(t, GEM, surface)
	assert.Equal(t, Terminated, node.Outcome())

	// Every point of the octagon outline lies between the apothem and the radius
	d := r2.Norm(r2.Sub(node.Endpoint, center))
	assert.GreaterOrEqual(t, d, 9.23)
	assert.LessOrEqual(t, d, 10+1e-9)
}

func TestTraceBounceBound(t *testing.T) {
	for _, maxBounces := range []int{0, 1, 5, 20} {
		node := Trace(V(10, 10), V(1, 0.37), closedBox(), maxBounces)
		assert.Len(t, node.Legs(), maxBounces+1, "maxBounces=%d", maxBounces)
		assert.Equal(t, maxBounces, node.Bounces())
		assert.Equal(t, Exhausted, node.Outcome())
		assert.True(t, node.Escaped())

		// The last leg reports the far end of its probe rather than the mirror it hit
		last := node.Last()
		assert.Nil(t, last.Child)
		assert.False(t, last.Terminated)
		assert.InDelta(t, ProbeLength, last.Length(), 1e-6)
	}
}

func TestTraceExclusivity(t *testing.T) {
	scene := DefaultScene()
	for _, shot := range DefaultEye.Sample(90, 0, 360) {
		node := DefaultEye.Cast(scene, shot.Direction, DefaultMaxBounces)
		assert.LessOrEqual(t, len(node.Legs()), DefaultMaxBounces+1)
		for _, leg := range node.Legs() {
			assert.False(t, leg.Terminated && leg.Child != nil, "angle %v", shot.Angle)
			if !leg.Terminated {
				assert.Equal(t, NoSurface, leg.Surface)
			}
		}
	}
}

func TestTraceLengthIsMonotonic(t *testing.T) {
	node := Trace(V(10, 10), V(1, 0.37), closedBox(), 8)
	for leg := node; leg.Child != nil; leg = leg.Child {
		assert.GreaterOrEqual(t, leg.TotalLength(), leg.Child.TotalLength())
		assert.InDelta(t, leg.Length()+leg.Child.TotalLength(), leg.TotalLength(), 1e-9)
	}
}

func TestTraceNoSelfIntersection(t *testing.T) {
	node := Trace(V(10, 10), V(1, 0.37), closedBox(), 8)
	for _, leg := range node.Legs()[1:] {
		assert.Greater(t, leg.Length(), EPSILON)
	}
}

func TestTraceCornerBouncesInPlace(t *testing.T) {
	box := Scene{}.AddBox(BoxSpec{Width: 100, Height: 100}).Segments
	node := Trace(V(50, 50), V(-1, -1), box, DefaultMaxBounces)

	assertVec(t, V(0, 0), node.Endpoint, 1e-9)
	assert.Equal(t, DefaultMaxBounces, node.Bounces())
	assert.Equal(t, Exhausted, node.Outcome())
	// Both walls meet at the corner, so every later leg starts and ends there
	for _, leg := range node.Legs()[1 : len(node.Legs())-1] {
		assertVec(t, V(0, 0), leg.Origin, 1e-9)
		assert.InDelta(t, 0, leg.Length(), 1e-9)
	}
	assert.InDelta(t, 50*math.Sqrt2, node.TotalLength()-node.Last().Length(), 1e-9)
	assertVec(t, V(0, 0), node.PointAt(50*math.Sqrt2), 1e-9)
}

func TestTraceMaxBouncesZero(t *testing.T) {
	mirror := []Segment{NewSegment(V(-100, 10), V(100, 10), true, MIRROR)}
	node := Trace(V(0, 0), V(0, 1), mirror, 0)

	assert.Nil(t, node.Child)
	assert.False(t, node.Terminated)
	assertVec(t, V(0, ProbeLength), node.Endpoint, 1e-6)
	assert.Equal(t, Exhausted, node.Outcome())
	_, ok := node.FinalSurface()
	assert.False(t, ok)
}

func TestTraceColinearIsIgnored(t *testing.T) {
	segments := []Segment{NewSegment(V(5, 0), V(15, 0), false, WALL)}
	node := Trace(V(0, 0), V(1, 0), segments, DefaultMaxBounces)
	assert.Equal(t, Escaped, node.Outcome())
}

func TestTraceTieBreak(t *testing.T) {
	a := NewSegment(V(5, -5), V(5, 5), false, "a")
	b := NewSegment(V(5, 5), V(5, -5), false, "b")

	surface, _ := Trace(V(0, 0), V(1, 0), []Segment{a, b}, 1).FinalSurface()
	assert.Equal(t, SurfaceID("a"), surface)

	surface, _ = Trace(V(0, 0), V(1, 0), []Segment{b, a}, 1).FinalSurface()
	assert.Equal(t, SurfaceID("b"), surface)
}

func TestTraceIgnoreSurface(t *testing.T) {
	scene := Scene{}.
		AddCircle(V(0, 0), 1, 16, false, EYE).
		AddWall(V(10, -10), V(10, 10), true, MIRROR)

	t.Run("blocked without ignore", func(t *testing.T) {
		node := scene.Trace(V(0, 0.2), V(1, 0), TraceParams{MaxBounces: 5})
		surface, ok := node.FinalSurface()
		assert.True(t, ok)
		assert.Equal(t, EYE, surface)
		assert.Less(t, node.Length(), 1.0)
	})

	t.Run("first leg only", func(t *testing.T) {
		node := scene.Trace(V(0, 0.2), V(1, 0), TraceParams{MaxBounces: 5, IgnoreSurface: EYE})
		require.NotNil(t, node.Child)
		assertVec(t, V(10, 0.2), node.Endpoint, 1e-9)
		// The reflection comes straight back and lands on the eye
		surface, ok := node.FinalSurface()
		assert.True(t, ok)
		assert.Equal(t, EYE, surface)
		assert.Equal(t, 1, node.Bounces())
	})
}

func TestContinuationEnd(t *testing.T) {
	mirror := []Segment{NewSegment(V(-100, 10), V(100, 10), true, MIRROR)}
	node := Trace(V(0, 0), V(0, 1), mirror, DefaultMaxBounces)
	assertVec(t, V(0, node.TotalLength()), node.ContinuationEnd(), 1e-6)
}
