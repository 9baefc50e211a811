package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	RunsDir       = "runs"
	LatestSymlink = "latest"
)

// RunDir is where a single trace or sweep saves its outputs
type RunDir struct {
	Path      string    // Absolute path to the run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateRunDirectory creates a new run directory under base and points base/latest at it.
//
// An empty base means RunsDir in the working directory.
func CreateRunDirectory(base string) (*RunDir, error) {
	if base == "" {
		base = RunsDir
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	now := time.Now().UTC()
	id := GenerateRunID(now)

	absPath, err := filepath.Abs(filepath.Join(base, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}
	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latestPath := filepath.Join(base, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// Not fatal, the run itself is intact
		fmt.Printf("Warning: failed to create latest symlink: %v\n", err)
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: now,
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (r *RunDir) GetFilePath(filename string) string {
	return filepath.Join(r.Path, filename)
}

// CopyConfigFile copies the scene config the run was made from into the run directory
func (r *RunDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	destPath := r.GetFilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
