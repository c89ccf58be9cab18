package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration.
// It matches defaults/match3.yaml and is used when that fails to parse.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Kinds:  5,
		},
		Rules: RulesConfig{
			Adjacency:   "adjacent",
			Granularity: "maximal",
			MaxPasses:   64,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
			CascadeBonus:  1,
		},
		Turns: TurnsConfig{
			Limit: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ExtraKinds: 2,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
