package room

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
)

// JSON schema types
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type LegJSON struct {
	Origin     PointJSON `json:"origin"`
	Direction  PointJSON `json:"direction"`
	Endpoint   PointJSON `json:"endpoint"`
	Length     float64   `json:"length"`
	Terminated bool      `json:"terminated,omitempty"`
	Surface    string    `json:"surface,omitempty"`
}

// CellJSON is a mirror image of the room crossed by the ray
type CellJSON struct {
	I     int  `json:"i"`
	J     int  `json:"j"`
	FlipX bool `json:"flipX,omitempty"`
	FlipY bool `json:"flipY,omitempty"`
}

type CastJSON struct {
	Name         string      `json:"name,omitempty"`
	Points       []PointJSON `json:"points"`
	Legs         []LegJSON   `json:"legs"`
	TotalLength  float64     `json:"totalLength"`
	FinalSurface string      `json:"finalSurface,omitempty"`
	Outcome      string      `json:"outcome"`
	Continuation PointJSON   `json:"continuation"`
	Cells        []CellJSON  `json:"cells,omitempty"`
	Color        string      `json:"color,omitempty"`
}

// Conversion functions
func VectorToJSON(v r2.Vec) PointJSON {
	return PointJSON{X: v.X, Y: v.Y}
}

// CastToJSON flattens a traced chain
func CastToJSON(node *RayNode, name string) CastJSON {
	points := node.Points()
	c := CastJSON{
		Name:         name,
		Points:       make([]PointJSON, len(points)),
		TotalLength:  node.TotalLength(),
		Outcome:      node.Outcome().String(),
		Continuation: VectorToJSON(node.ContinuationEnd()),
		Color:        "#808080",
	}
	for i, p := range points {
		c.Points[i] = VectorToJSON(p)
	}
	for _, leg := range node.Legs() {
		c.Legs = append(c.Legs, LegJSON{
			Origin:     VectorToJSON(leg.Origin),
			Direction:  VectorToJSON(leg.Direction),
			Endpoint:   VectorToJSON(leg.Endpoint),
			Length:     leg.Length(),
			Terminated: leg.Terminated,
			Surface:    string(leg.Surface),
		})
	}
	if surface, ok := node.FinalSurface(); ok {
		c.FinalSurface = string(surface)
		c.Color = "#FF0000"
	}
	return c
}

// SegmentJSON records a scene segment alongside the casts
type SegmentJSON struct {
	P1         PointJSON `json:"p1"`
	P2         PointJSON `json:"p2"`
	Reflective bool      `json:"reflective"`
	Surface    string    `json:"surface,omitempty"`
}

// SaveCastsToJSON saves the scene and a set of casts to a JSON file
func SaveCastsToJSON(filename string, scene Scene, casts []CastJSON) error {
	container := struct {
		Segments []SegmentJSON `json:"segments"`
		Casts    []CastJSON    `json:"casts"`
	}{
		Segments: make([]SegmentJSON, 0, len(scene.Segments)),
		Casts:    casts,
	}
	for _, seg := range scene.Segments {
		container.Segments = append(container.Segments, SegmentJSON{
			P1:         VectorToJSON(seg.P1),
			P2:         VectorToJSON(seg.P2),
			Reflective: seg.Reflective,
			Surface:    string(seg.Surface),
		})
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling casts: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}
