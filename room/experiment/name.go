package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"bright", "hidden", "silver", "misty", "silent", "empty", "polished", "dark",
		"glassy", "icy", "delicate", "quiet", "white", "cool", "endless", "folded",
		"patient", "twilight", "dawn", "crimson", "wispy", "faceted", "blue",
		"broken", "cold", "curved", "distant", "falling", "frosty", "green",
		"long", "late", "lingering", "bold", "little", "morning", "narrow", "old",
		"red", "rough", "still", "small", "sparkling", "shy", "wandering",
		"mirrored", "wild", "black", "young", "solitary", "proud", "restless",
		"nameless", "lucky", "oddball", "crystal", "clear", "hollow",
	}

	nouns = []string{
		"mirror", "prism", "lens", "moon", "beam", "glint", "sea", "morning",
		"snow", "lake", "sunset", "shadow", "halo", "dawn", "glitter", "facet",
		"corridor", "hill", "cloud", "meadow", "sun", "glade", "firefly", "spark",
		"gem", "jewel", "dew", "dust", "field", "fire", "flower", "flare",
		"feather", "haze", "mountain", "night", "pond", "darkness", "window",
		"snowflake", "silence", "sky", "shape", "thunder", "violet", "water",
		"wave", "ray", "dream", "frost", "pane", "star", "gold", "copper",
		"echo", "hall", "tunnel", "eye",
	}
)

// GenerateRunName creates a memorable run identifier in the format "adjective-noun"
func GenerateRunName(rng *rand.Rand) string {
	adj := adjectives[rng.Intn(len(adjectives))]
	noun := nouns[rng.Intn(len(nouns))]
	return adj + "-" + noun
}

// GenerateRunID combines a memorable name with the timestamp of the run
func GenerateRunID(at time.Time) string {
	rng := rand.New(rand.NewSource(at.UnixNano()))
	return GenerateRunName(rng) + "-" + at.UTC().Format("20060102-150405")
}
