package config

import (
	"fmt"

	goroom "github.com/jdginn/go-mirror-box/room"
	"gonum.org/v1/gonum/spatial/r2"
)

// Default grid reach used when the config leaves it unset
const DefaultReach = 2

func vec(p [2]float64) r2.Vec {
	return r2.Vec{X: p[0], Y: p[1]}
}

func (r Room) surface() string {
	if r.Surface == "" {
		return string(goroom.MIRROR)
	}
	return r.Surface
}

// Default returns the config equivalent of room.DefaultScene
func Default() *SceneConfig {
	box := goroom.DefaultBox
	eye := goroom.DefaultEye
	return &SceneConfig{
		Room: Room{Width: box.Width, Height: box.Height, Opening: box.Opening},
		Walls: []Wall{
			{From: [2]float64{20, 50}, To: [2]float64{40, 50}, Surface: string(goroom.WALL)},
		},
		Obstacles: Obstacles{
			Inline: []Obstacle{{
				Center:  [2]float64{goroom.DefaultGemPosition.X, goroom.DefaultGemPosition.Y},
				Radius:  goroom.DefaultGemRadius,
				Sides:   goroom.DefaultCircleSides,
				Surface: string(goroom.GEM),
			}},
		},
		Eye: Eye{
			Position: [2]float64{eye.Position.X, eye.Position.Y},
			Radius:   eye.Radius,
			Aim:      [2]float64{eye.Aim.X, eye.Aim.Y},
		},
		Target: string(goroom.GEM),
		Trace:  Trace{MaxBounces: goroom.DefaultMaxBounces},
		Grid:   Grid{Reach: DefaultReach},
		Sweep:  Sweep{Samples: 360},
	}
}

// Build assembles the scene described by the config.
//
// Segment order is the floor plan (or room box), then walls, then obstacles, then the eye.
func (c *SceneConfig) Build() (goroom.Scene, error) {
	var scene goroom.Scene
	if c.Floorplan != nil {
		var err error
		scene, err = goroom.NewFrom3MF(c.Floorplan.Path, goroom.SliceParams{
			Height:     c.Floorplan.Height,
			Scale:      c.Floorplan.Scale,
			Reflective: c.Floorplan.Reflective,
		})
		if err != nil {
			return goroom.Scene{}, fmt.Errorf("slicing floorplan: %w", err)
		}
	} else {
		scene = scene.AddBox(goroom.BoxSpec{
			Width:   c.Room.Width,
			Height:  c.Room.Height,
			Opening: c.Room.Opening,
			Surface: goroom.SurfaceID(c.Room.surface()),
			Matte:   c.Room.Matte,
		})
	}

	for _, wall := range c.Walls {
		scene = scene.AddWall(vec(wall.From), vec(wall.To), wall.Reflective, goroom.SurfaceID(wall.Surface))
	}
	for _, o := range c.Obstacles.Inline {
		scene = scene.AddCircle(vec(o.Center), o.Radius, o.Sides, o.Reflective, goroom.SurfaceID(o.Surface))
	}
	if c.Eye.Radius > 0 {
		scene = scene.AddCircle(vec(c.Eye.Position), c.Eye.Radius, goroom.DefaultCircleSides, false, goroom.EYE)
	}
	return scene, nil
}

func (c *SceneConfig) EyeSpec() goroom.Eye {
	return goroom.Eye{
		Position: vec(c.Eye.Position),
		Radius:   c.Eye.Radius,
		Aim:      vec(c.Eye.Aim),
	}
}

// MaxBounces falls back to room.DefaultMaxBounces when unset
func (c *SceneConfig) MaxBounces() int {
	if c.Trace.MaxBounces == 0 {
		return goroom.DefaultMaxBounces
	}
	return c.Trace.MaxBounces
}

func (c *SceneConfig) Reach() int {
	if c.Grid.Reach == 0 {
		return DefaultReach
	}
	return c.Grid.Reach
}

// SweepParams converts the sweep section, filling in the trace budget
func (c *SceneConfig) SweepParams() goroom.SweepParams {
	return goroom.SweepParams{
		Samples:    c.Sweep.Samples,
		Start:      c.Sweep.Start,
		Span:       c.Sweep.Span,
		MaxBounces: c.MaxBounces(),
		Workers:    c.Sweep.Workers,
	}
}
