// Package config provides YAML-based configuration loading and difficulty
// management for match3.
package config

// Match3Config contains all configuration for a match3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Rules      RulesConfig      `yaml:"rules"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Turns      TurnsConfig      `yaml:"turns"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board size and gem variety.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Kinds  int `yaml:"kinds"` // Distinct gem kinds at the start of a game
}

// RulesConfig selects the engine variants.
type RulesConfig struct {
	Adjacency   string `yaml:"adjacency"`   // "adjacent" or "line"
	Granularity string `yaml:"granularity"` // "maximal" or "triples"
	MaxPasses   int    `yaml:"max_passes"`  // Cascade cap per move, 0 = unlimited
}

// ScoringConfig defines how cleared tiles turn into points.
type ScoringConfig struct {
	PointsPerTile int `yaml:"points_per_tile"`
	CascadeBonus  int `yaml:"cascade_bonus"` // Multiplier added for each pass after the first
}

// TurnsConfig limits the length of a classic game.
type TurnsConfig struct {
	Limit int `yaml:"limit"` // 0 = play until no moves remain
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score or move count at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraKinds int `yaml:"extra_kinds"` // Gem kinds added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
