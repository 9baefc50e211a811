package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func midpoint(s Segment) r2.Vec {
	return r2.Scale(0.5, r2.Add(s.P1, s.P2))
}

func TestAddBoxNormalsFaceInterior(t *testing.T) {
	tests := []struct {
		name    string
		spec    BoxSpec
		walls   int
		surface SurfaceID
	}{
		{"closed", BoxSpec{Width: 150, Height: 100}, 4, MIRROR},
		{"with opening", BoxSpec{Width: 150, Height: 100, Opening: 25}, 5, MIRROR},
		{"matte", BoxSpec{Width: 10, Height: 20, Matte: true, Surface: WALL}, 4, WALL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := Scene{}.AddBox(tt.spec)
			assert.Len(t, scene.Segments, tt.walls)
			center := V(tt.spec.Width/2, tt.spec.Height/2)
			for _, seg := range scene.Segments {
				assert.True(t, seg.Faces(center), "%v does not face the interior", seg)
				assert.Equal(t, !tt.spec.Matte, seg.Reflective)
				assert.Equal(t, tt.surface, seg.Surface)
			}
		})
	}
}

func TestAddBoxOpening(t *testing.T) {
	scene := Scene{}.AddBox(BoxSpec{Width: 150, Height: 100, Opening: 25})
	// Straight down through the middle of the gap
	node := scene.Trace(V(75, 50), V(0, 1), TraceParams{MaxBounces: 5})
	assert.Equal(t, Escaped, node.Outcome())
	assert.Equal(t, 0, node.Bounces())

	// Just beside the gap it bounces between the top and bottom walls until it runs out
	node = scene.Trace(V(50, 50), V(0, 1), TraceParams{MaxBounces: 5})
	assert.Equal(t, Exhausted, node.Outcome())
	assert.Equal(t, 5, node.Bounces())
	for _, leg := range node.Legs()[:5] {
		assert.InDelta(t, 50, leg.Endpoint.X, 1e-9)
	}
}

func TestAddCircleNormalsFaceOutward(t *testing.T) {
	center := V(30, 20)
	for _, sides := range []int{0, 3, 8, 16} {
		scene := Scene{}.AddCircle(center, 7.5, sides, false, GEM)
		want := sides
		if sides < 3 {
			want = DefaultCircleSides
		}
		assert.Len(t, scene.Segments, want)
		for _, seg := range scene.Segments {
			assert.False(t, seg.Faces(center), "sides=%d: %v faces the center", sides, seg)
			out := r2.Add(midpoint(seg), r2.Unit(seg.Normal()))
			assert.Greater(t, r2.Norm(r2.Sub(out, center)), r2.Norm(r2.Sub(midpoint(seg), center)))
		}
	}
}

func TestSceneIsImmutable(t *testing.T) {
	base := Scene{}.AddWall(V(0, 0), V(1, 0), true, MIRROR)
	a := base.AddWall(V(0, 1), V(1, 1), false, "a")
	b := base.AddWall(V(0, 2), V(1, 2), false, "b")

	assert.Len(t, base.Segments, 1)
	assert.Equal(t, SurfaceID("a"), a.Segments[1].Surface)
	assert.Equal(t, SurfaceID("b"), b.Segments[1].Surface)
}

func TestDefaultScene(t *testing.T) {
	scene := DefaultScene()
	assert.Equal(t, []SurfaceID{MIRROR, WALL, GEM, EYE}, scene.Surfaces())
	// Five box walls, one matte wall and two 16-gons
	assert.Len(t, scene.Segments, 5+1+2*DefaultCircleSides)

	without := scene.Without(EYE)
	assert.Len(t, without.Segments, 5+1+DefaultCircleSides)
	assert.NotContains(t, without.Surfaces(), EYE)
	assert.Len(t, scene.Segments, 5+1+2*DefaultCircleSides)
}

func TestEyeCast(t *testing.T) {
	scene := DefaultScene()

	// Straight out through the opening
	node := DefaultEye.Cast(scene, V(0.1, 1), DefaultMaxBounces)
	assert.Equal(t, Escaped, node.Outcome())
	assert.Equal(t, 0, node.Bounces())

	// Without ignoring its own outline the eye blocks itself
	node = scene.Trace(DefaultEye.Position, V(0.1, 1), TraceParams{MaxBounces: DefaultMaxBounces})
	surface, ok := node.FinalSurface()
	assert.True(t, ok)
	assert.Equal(t, EYE, surface)
	assert.LessOrEqual(t, node.Length(), DefaultEye.Radius)

	// Straight at the gem
	node = DefaultEye.Cast(scene, DefaultEye.Toward(DefaultGemPosition), DefaultMaxBounces)
	surface, ok = node.FinalSurface()
	assert.True(t, ok)
	assert.Equal(t, GEM, surface)
	assert.Equal(t, 0, node.Bounces())
}
