package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeObstacles appends obstacles listed in a JSON file after the inline ones.
//
// Inline obstacles come first so they win tie-breaks when a ray hits two surfaces at once.
func (o *Obstacles) MergeObstacles() error {
	if o.FromFile == "" {
		return nil
	}

	// Read and parse the obstacles file
	data, err := os.ReadFile(o.FromFile)
	if err != nil {
		return fmt.Errorf("reading obstacles file: %w", err)
	}

	var fileObstacles []Obstacle
	if err := json.Unmarshal(data, &fileObstacles); err != nil {
		return fmt.Errorf("parsing obstacles file: %w", err)
	}

	// Skip obstacles whose surface is already defined inline. File obstacles may
	// share a surface among themselves.
	inline := map[string]bool{}
	for _, obstacle := range o.Inline {
		inline[obstacle.Surface] = true
	}
	for _, obstacle := range fileObstacles {
		if !inline[obstacle.Surface] {
			o.Inline = append(o.Inline, obstacle)
		}
	}
	o.FromFile = ""

	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *SceneConfig) LoadAndMerge() error {
	if err := c.Obstacles.MergeObstacles(); err != nil {
		return fmt.Errorf("merging obstacles: %w", err)
	}

	return nil
}
