package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "match3.yaml"

// LoadMatch3 loads the match3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml ->
// ./configs/match3.yaml -> embedded default -> DefaultMatch3Config.
// Fields missing from a file keep their default values.
func LoadMatch3(customPath string) (Match3Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Match3Config{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), nil
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults.
func parse(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// Validate rejects configurations no game can be built from.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Width < board.MinRun || c.Board.Height < board.MinRun {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d",
			board.MinRun, board.MinRun, c.Board.Width, c.Board.Height))
	}
	if c.Board.Kinds < tiles.MinKinds || c.Board.Kinds > int(tiles.GemCount) {
		errs = append(errs, fmt.Errorf("kinds must be in [%d, %d], got %d",
			tiles.MinKinds, tiles.GemCount, c.Board.Kinds))
	}
	if _, err := c.EngineRules(); err != nil {
		errs = append(errs, err)
	}
	if c.Scoring.PointsPerTile < 0 || c.Scoring.CascadeBonus < 0 {
		errs = append(errs, errors.New("scoring values must be non-negative"))
	}
	if c.Turns.Limit < 0 {
		errs = append(errs, fmt.Errorf("turn limit must be non-negative, got %d", c.Turns.Limit))
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "moves", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// EngineRules converts the rules section to board.Rules.
func (c Match3Config) EngineRules() (board.Rules, error) {
	rules := board.DefaultRules()
	adj, ok := board.ParseAdjacency(c.Rules.Adjacency)
	if !ok {
		return rules, fmt.Errorf("unknown adjacency %q", c.Rules.Adjacency)
	}
	gran, ok := board.ParseGranularity(c.Rules.Granularity)
	if !ok {
		return rules, fmt.Errorf("unknown granularity %q", c.Rules.Granularity)
	}
	if c.Rules.MaxPasses < 0 {
		return rules, fmt.Errorf("max_passes must be non-negative, got %d", c.Rules.MaxPasses)
	}
	rules.Adjacency = adj
	rules.Granularity = gran
	rules.MaxPasses = c.Rules.MaxPasses
	return rules, nil
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Board.Kinds = 4
		cfg.Turns.Limit = 40
	case DifficultyHard:
		cfg.Board.Kinds = 6
		cfg.Turns.Limit = 20
	}
}
