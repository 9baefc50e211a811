package main

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/alecthomas/kong"
	"gonum.org/v1/plot/vg"

	"github.com/jdginn/go-mirror-box/interact"
	goroom "github.com/jdginn/go-mirror-box/room"
	"github.com/jdginn/go-mirror-box/room/config"
	"github.com/jdginn/go-mirror-box/room/experiment"
	"github.com/jdginn/go-mirror-box/room/tiling"
)

var CLI struct {
	Trace    TraceCmd    `cmd:"" help:"Cast a single ray from the eye"`
	Sweep    SweepCmd    `cmd:"" help:"Cast rays all around the eye and count where they land"`
	Validate ValidateCmd `cmd:"" help:"Check a scene config for errors"`
	Inspect  InspectCmd  `cmd:"" help:"Browse the legs of a cast, re-aiming with the arrow keys"`
}

func loadScene(path string) (*config.SceneConfig, goroom.Scene, error) {
	cfg, err := config.LoadFromFile(path, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return nil, goroom.Scene{}, err
	}
	scene, err := cfg.Build()
	if err != nil {
		return nil, goroom.Scene{}, err
	}
	return cfg, scene, nil
}

type TraceCmd struct {
	Config  string    `arg:"" name:"config" help:"scene config (YAML)" type:"existingfile"`
	Angle   *float64  `name:"angle" help:"aim in degrees, overriding the config" xor:"aim"`
	Toward  []float64 `name:"toward" help:"aim at x,y instead of an angle" xor:"aim"`
	Out     string    `name:"out" help:"write the cast as JSON to this file"`
	SaveRun bool      `name:"save-run" help:"save the cast and config into a new run directory"`
}

func (c TraceCmd) Run() error {
	cfg, scene, err := loadScene(c.Config)
	if err != nil {
		return err
	}
	eye := cfg.EyeSpec()

	direction := eye.Aim
	switch {
	case c.Angle != nil:
		direction = goroom.Direction(*c.Angle)
	case len(c.Toward) == 2:
		direction = eye.Toward(goroom.V(c.Toward[0], c.Toward[1]))
	case len(c.Toward) != 0:
		return fmt.Errorf("--toward takes x,y, got %v", c.Toward)
	}
	if direction == goroom.V(0, 0) {
		return fmt.Errorf("cannot aim the eye at its own center")
	}

	node := eye.Cast(scene, direction, cfg.MaxBounces())
	for i, leg := range node.Legs() {
		fmt.Printf("%2d  (%8.3f, %8.3f) -> (%8.3f, %8.3f)  %8.3f\n",
			i, leg.Origin.X, leg.Origin.Y, leg.Endpoint.X, leg.Endpoint.Y, leg.Length())
	}
	fmt.Printf("outcome: %s after %d bounces, total length %.3f\n", node.Outcome(), node.Bounces(), node.TotalLength())
	if surface, ok := node.FinalSurface(); ok {
		fmt.Printf("final surface: %s", surface)
		if cfg.Target != "" && surface == goroom.SurfaceID(cfg.Target) {
			fmt.Print(" (target)")
		}
		fmt.Println()
	}

	cast := goroom.CastToJSON(node, fmt.Sprintf("%.2f", goroom.Angle(direction)))
	if cfg.Floorplan == nil {
		grid := tiling.NewGrid(cfg.Room.Width, cfg.Room.Height, cfg.Reach())
		traversal := grid.TraverseRay(node)
		fmt.Printf("mirror images crossed: %d\n", len(traversal.Cells))
		for _, cell := range traversal.Cells {
			cast.Cells = append(cast.Cells, goroom.CellJSON{I: cell.I, J: cell.J, FlipX: cell.FlipX, FlipY: cell.FlipY})
		}
	}

	out := c.Out
	if c.SaveRun {
		run, err := experiment.CreateRunDirectory("")
		if err != nil {
			return err
		}
		if err := run.CopyConfigFile(c.Config); err != nil {
			return err
		}
		if out == "" {
			out = "cast.json"
		}
		out = run.GetFilePath(out)
		log.Printf("saving run %s", run.ID)
	}
	if out != "" {
		if err := goroom.SaveCastsToJSON(out, scene, []goroom.CastJSON{cast}); err != nil {
			return err
		}
	}
	return nil
}

type SweepCmd struct {
	Config  string `arg:"" name:"config" help:"scene config (YAML)" type:"existingfile"`
	Samples int    `name:"samples" help:"number of rays, overriding the config"`
	Workers int    `name:"workers" help:"number of casts traced at once, overriding the config"`
	Out     string `name:"out" help:"write every cast as JSON to this file"`
	Chart   string `name:"chart" help:"save a bar chart of the outcomes (png, svg or pdf)"`
	Lengths string `name:"lengths" help:"save a scatter of path length against angle (png, svg or pdf)"`
}

func (c SweepCmd) Run() error {
	cfg, scene, err := loadScene(c.Config)
	if err != nil {
		return err
	}
	params := cfg.SweepParams()
	if c.Samples > 0 {
		params.Samples = c.Samples
	}
	if c.Workers > 0 {
		params.Workers = c.Workers
	}
	eye := cfg.EyeSpec()

	result, err := goroom.Sweep(context.Background(), eye, scene, params)
	if err != nil {
		return err
	}

	surfaces := make([]goroom.SurfaceID, 0, len(result.Hits))
	for surface := range result.Hits {
		surfaces = append(surfaces, surface)
	}
	sort.Slice(surfaces, func(i, j int) bool {
		return result.Hits[surfaces[i]] > result.Hits[surfaces[j]]
	})
	for _, surface := range surfaces {
		marker := ""
		if surface == goroom.SurfaceID(cfg.Target) {
			marker = " (target)"
		}
		fmt.Printf("%-12s %6d  %5.1f%%%s\n", surface, result.Hits[surface], 100*result.HitFraction(surface), marker)
	}
	fmt.Printf("%-12s %6d\n", "escaped", result.Escapes)
	fmt.Printf("%-12s %6d\n", "exhausted", result.Exhausted)
	fmt.Printf("mean path length to a surface: %.3f\n", result.MeanLength())

	if c.Chart != "" {
		if err := goroom.PlotSweepOutcomes(result, c.Chart, 6*vg.Inch, 4*vg.Inch); err != nil {
			return err
		}
	}
	if c.Lengths != "" {
		if err := goroom.PlotSweepLengths(result, c.Lengths, 6*vg.Inch, 4*vg.Inch); err != nil {
			return err
		}
	}

	if c.Out != "" {
		casts := make([]goroom.CastJSON, len(result.Casts))
		for i, sc := range result.Casts {
			casts[i] = goroom.CastToJSON(eye.Cast(scene, sc.Shot.Direction, params.MaxBounces), fmt.Sprintf("%.2f", sc.Shot.Angle))
		}
		if err := goroom.SaveCastsToJSON(c.Out, scene, casts); err != nil {
			return err
		}
	}
	return nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"scene config (YAML)" type:"existingfile"`
}

func (c ValidateCmd) Run() error {
	cfg, err := config.LoadFromFile(c.Config, config.LoadOptions{ResolvePaths: true, MergeFiles: true})
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Print(config.FormatValidationErrors(errs))
		return fmt.Errorf("%d validation errors", len(errs))
	}
	scene, err := cfg.Build()
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d segments, surfaces %v\n", len(scene.Segments), scene.Surfaces())
	return nil
}

type InspectCmd struct {
	Config string `arg:"" name:"config" help:"scene config (YAML)" type:"existingfile"`
}

func (c InspectCmd) Run() error {
	cfg, scene, err := loadScene(c.Config)
	if err != nil {
		return err
	}
	return interact.Interact(scene, cfg.EyeSpec(), cfg.MaxBounces())
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
