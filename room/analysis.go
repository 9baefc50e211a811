package room

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SweepParams controls a sweep of casts from the eye
type SweepParams struct {
	Samples int
	// First angle, in degrees
	Start float64
	// Angular range covered, in degrees. Zero means a full turn.
	Span       float64
	MaxBounces int
	// Number of casts traced concurrently. Zero or less means unlimited.
	Workers int
}

// SweepCast is the summary of one cast in a sweep
type SweepCast struct {
	Shot        Shot
	Outcome     Outcome
	Surface     SurfaceID
	Bounces     int
	TotalLength float64
}

type SweepResult struct {
	// One entry per shot, in angle order
	Casts []SweepCast
	// Number of casts terminating on each surface
	Hits      map[SurfaceID]int
	Escapes   int
	Exhausted int
}

// Sweep casts params.Samples rays from the eye and tallies where they end up.
//
// Casts only read the scene, so they are traced concurrently.
func Sweep(ctx context.Context, eye Eye, scene Scene, params SweepParams) (SweepResult, error) {
	if params.Samples <= 0 {
		return SweepResult{}, fmt.Errorf("sweep needs at least one sample, got %d", params.Samples)
	}
	span := params.Span
	if span == 0 {
		span = 360
	}
	shots := eye.Sample(params.Samples, params.Start, span)
	casts := make([]SweepCast, len(shots))

	g, ctx := errgroup.WithContext(ctx)
	if params.Workers > 0 {
		g.SetLimit(params.Workers)
	}
	for i, shot := range shots {
		i, shot := i, shot
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			node := eye.Cast(scene, shot.Direction, params.MaxBounces)
			surface, _ := node.FinalSurface()
			casts[i] = SweepCast{
				Shot:        shot,
				Outcome:     node.Outcome(),
				Surface:     surface,
				Bounces:     node.Bounces(),
				TotalLength: node.TotalLength(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SweepResult{}, fmt.Errorf("sweeping: %w", err)
	}

	result := SweepResult{Casts: casts, Hits: map[SurfaceID]int{}}
	for _, c := range casts {
		switch c.Outcome {
		case Terminated:
			result.Hits[c.Surface]++
		case Exhausted:
			result.Exhausted++
		default:
			result.Escapes++
		}
	}
	return result, nil
}

// HitFraction is the share of casts that terminated on surface
func (r SweepResult) HitFraction(surface SurfaceID) float64 {
	if len(r.Casts) == 0 {
		return 0
	}
	return float64(r.Hits[surface]) / float64(len(r.Casts))
}

// MeanLength is the average path length of casts that terminated on a surface
func (r SweepResult) MeanLength() float64 {
	total, count := 0.0, 0
	for _, c := range r.Casts {
		if c.Outcome == Terminated {
			total += c.TotalLength
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
