package config

// SceneConfig represents the complete configuration for a mirror box simulation
type SceneConfig struct {
	Metadata  Metadata   `yaml:"metadata"`
	Room      Room       `yaml:"room"`
	Walls     []Wall     `yaml:"walls,omitempty"`
	Obstacles Obstacles  `yaml:"obstacles"`
	Floorplan *Floorplan `yaml:"floorplan,omitempty"`
	Eye       Eye        `yaml:"eye"`
	Target    string     `yaml:"target"` // surface that counts as a hit, e.g. "gem"
	Trace     Trace      `yaml:"trace"`
	Grid      Grid       `yaml:"grid"`
	Sweep     Sweep      `yaml:"sweep"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

// Room is the mirrored box. Skipped when a floorplan is given.
type Room struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Opening float64 `yaml:"opening"`
	Surface string  `yaml:"surface,omitempty"`
	Matte   bool    `yaml:"matte,omitempty"`
}

type Wall struct {
	From       [2]float64 `yaml:"from" json:"from"`
	To         [2]float64 `yaml:"to" json:"to"`
	Reflective bool       `yaml:"reflective" json:"reflective"`
	Surface    string     `yaml:"surface" json:"surface"`
}

type Obstacle struct {
	Center     [2]float64 `yaml:"center" json:"center"`
	Radius     float64    `yaml:"radius" json:"radius"`
	Sides      int        `yaml:"sides,omitempty" json:"sides,omitempty"`
	Reflective bool       `yaml:"reflective,omitempty" json:"reflective,omitempty"`
	Surface    string     `yaml:"surface" json:"surface"`
}

type Obstacles struct {
	Inline   []Obstacle `yaml:"inline,omitempty"`
	FromFile string     `yaml:"from_file,omitempty"`
}

type Floorplan struct {
	Path       string          `yaml:"path"`
	Height     float64         `yaml:"height"`
	Scale      float64         `yaml:"scale,omitempty"`
	Reflective map[string]bool `yaml:"reflective,omitempty"` // object name -> reflective
}

type Eye struct {
	Position [2]float64 `yaml:"position"`
	Radius   float64    `yaml:"radius"`
	Aim      [2]float64 `yaml:"aim"` // relative to position
}

type Trace struct {
	MaxBounces int `yaml:"max_bounces"`
}

type Grid struct {
	Reach int `yaml:"reach"`
}

type Sweep struct {
	Samples int     `yaml:"samples"`
	Start   float64 `yaml:"start"`
	Span    float64 `yaml:"span"`
	Workers int     `yaml:"workers"`
}
