package config

import (
	"fmt"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateDistinct(field string, a, b [2]float64) []ValidationError {
	if a == b {
		return []ValidationError{{
			Field:   field,
			Message: "endpoints must not coincide",
		}}
	}
	return nil
}

func validateSurface(field, surface string) []ValidationError {
	if surface == "" {
		return []ValidationError{{
			Field:   field,
			Message: "surface tag is required",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups validation errors by their top-level field
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	// Group errors by category, keeping the order categories first appear in
	var order []string
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError
	if c.Floorplan != nil {
		errors = append(errors, c.Floorplan.Validate()...)
	} else {
		errors = append(errors, c.Room.Validate()...)
	}
	for i, wall := range c.Walls {
		errors = append(errors, wall.Validate(fmt.Sprintf("walls.%d", i))...)
	}
	errors = append(errors, c.Obstacles.Validate()...)
	errors = append(errors, c.Eye.Validate()...)
	errors = append(errors, c.Trace.Validate()...)
	errors = append(errors, c.Grid.Validate()...)
	errors = append(errors, c.Sweep.Validate()...)
	errors = append(errors, c.validateTarget()...)
	return errors
}

func (r *Room) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive("room.width", r.Width)...)
	errors = append(errors, validatePositive("room.height", r.Height)...)
	errors = append(errors, validateNonNegative("room.opening", r.Opening)...)
	if r.Width > 0 && r.Opening >= r.Width {
		errors = append(errors, ValidationError{
			Field:   "room.opening",
			Message: "must be narrower than the room",
		})
	}
	return errors
}

func (w *Wall) Validate(field string) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateDistinct(field, w.From, w.To)...)
	errors = append(errors, validateSurface(field+".surface", w.Surface)...)
	return errors
}

func (o *Obstacles) Validate() []ValidationError {
	var errors []ValidationError
	for i, obstacle := range o.Inline {
		field := fmt.Sprintf("obstacles.inline.%d", i)
		errors = append(errors, validatePositive(field+".radius", obstacle.Radius)...)
		if obstacle.Sides != 0 && obstacle.Sides < 3 {
			errors = append(errors, ValidationError{
				Field:   field + ".sides",
				Message: "a polygon needs at least 3 sides",
			})
		}
		errors = append(errors, validateSurface(field+".surface", obstacle.Surface)...)
	}
	if o.FromFile != "" && !fileExists(o.FromFile) {
		errors = append(errors, ValidationError{
			Field:   "obstacles.from_file",
			Message: fmt.Sprintf("file '%s' does not exist", o.FromFile),
		})
	}
	return errors
}

func (f *Floorplan) Validate() []ValidationError {
	var errors []ValidationError
	if f.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "floorplan.path",
			Message: "mesh path is required",
		})
	} else if !fileExists(f.Path) {
		errors = append(errors, ValidationError{
			Field:   "floorplan.path",
			Message: fmt.Sprintf("file '%s' does not exist", f.Path),
		})
	}
	errors = append(errors, validateNonNegative("floorplan.scale", f.Scale)...)
	return errors
}

func (e *Eye) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("eye.radius", e.Radius)...)
	if e.Aim == [2]float64{0, 0} {
		errors = append(errors, ValidationError{
			Field:   "eye.aim",
			Message: "must be a non-zero direction",
		})
	}
	return errors
}

func (t *Trace) Validate() []ValidationError {
	return validateNonNegative("trace.max_bounces", float64(t.MaxBounces))
}

func (g *Grid) Validate() []ValidationError {
	return validateNonNegative("grid.reach", float64(g.Reach))
}

func (s *Sweep) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("sweep.samples", float64(s.Samples))...)
	errors = append(errors, validateNonNegative("sweep.workers", float64(s.Workers))...)
	errors = append(errors, validateInRange("sweep.span", s.Span, 0, 360)...)
	return errors
}

// validateTarget checks that the target names a surface the config defines.
//
// Floor plan surfaces are only known once the mesh is sliced, so they are not checked.
func (c *SceneConfig) validateTarget() []ValidationError {
	if c.Target == "" || c.Floorplan != nil {
		return nil
	}
	surfaces := map[string]bool{c.Room.surface(): true, "eye": true}
	for _, wall := range c.Walls {
		surfaces[wall.Surface] = true
	}
	for _, obstacle := range c.Obstacles.Inline {
		surfaces[obstacle.Surface] = true
	}
	if !surfaces[c.Target] {
		return []ValidationError{{
			Field:   "target",
			Message: fmt.Sprintf("references undefined surface '%s'", c.Target),
		}}
	}
	return nil
}
