package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML Match3Config
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if fromYAML != DefaultMatch3Config() {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", fromYAML, DefaultMatch3Config())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "board:\n  width: 5\n  height: 5\n  kinds: 4\nrules:\n  adjacency: line\nturns:\n  limit: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3: %v", err)
	}
	if cfg.Board.Width != 5 || cfg.Board.Kinds != 4 || cfg.Turns.Limit != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset sections keep their defaults.
	if cfg.Scoring != DefaultMatch3Config().Scoring {
		t.Errorf("scoring = %+v", cfg.Scoring)
	}
	rules, err := cfg.EngineRules()
	if err != nil || rules.Adjacency != board.SameLine || rules.MaxPasses != 64 {
		t.Errorf("rules = %+v, %v", rules, err)
	}
}

func TestLoadMatch3CustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  kinds: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name, path, want string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"malformed", bad, "failed to parse"},
		{"invalid", invalid, "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMatch3(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		ok     bool
	}{
		{"defaults", func(*Match3Config) {}, true},
		{"tiny board", func(c *Match3Config) { c.Board.Width = 2 }, false},
		{"too few kinds", func(c *Match3Config) { c.Board.Kinds = 2 }, false},
		{"too many kinds", func(c *Match3Config) { c.Board.Kinds = 8 }, false},
		{"bad adjacency", func(c *Match3Config) { c.Rules.Adjacency = "diagonal" }, false},
		{"bad granularity", func(c *Match3Config) { c.Rules.Granularity = "pairs" }, false},
		{"negative passes", func(c *Match3Config) { c.Rules.MaxPasses = -1 }, false},
		{"negative turns", func(c *Match3Config) { c.Turns.Limit = -1 }, false},
		{"negative points", func(c *Match3Config) { c.Scoring.PointsPerTile = -1 }, false},
		{"bad progression", func(c *Match3Config) { c.Difficulty.Progression.Type = "time" }, false},
		{"unlimited", func(c *Match3Config) { c.Turns.Limit = 0; c.Rules.MaxPasses = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		kinds   int
		turns   int
	}{
		{DifficultyEasy, true, 0.0, 4, 40},
		{DifficultyNormal, true, 0.3, 5, 30},
		{DifficultyHard, true, 0.7, 6, 20},
		{DifficultyFixed, false, 0.0, 5, 30},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyMatch3Preset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
			if cfg.Board.Kinds != tt.kinds || cfg.Turns.Limit != tt.turns {
				t.Errorf("kinds=%d turns=%d", cfg.Board.Kinds, cfg.Turns.Limit)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset accepted insane")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{ExtraKinds: 2},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		level float64
		extra int
	}{
		{0, 0.0, 0},
		{250, 0.25, 0},
		{500, 0.5, 1},
		{1000, 1.0, 2},
		{5000, 1.0, 2},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); got != tt.level {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.level)
		}
		if got := dm.ExtraKinds(tt.score, 0); got != tt.extra {
			t.Errorf("ExtraKinds(%d) = %d, want %d", tt.score, got, tt.extra)
		}
	}

	half := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	})
	if got := half.Level(500, 0); got != 0.75 {
		t.Errorf("Level from 0.5 = %v, want 0.75", got)
	}

	moves := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "moves", MaxAt: 10},
		Scaling:     ScalingConfig{ExtraKinds: 1},
	})
	if got := moves.ExtraKinds(99999, 10); got != 1 {
		t.Errorf("moves ExtraKinds = %d", got)
	}

	off := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.3})
	if off.IsEnabled() || off.Level(1000, 1000) != 0.3 {
		t.Error("disabled manager should stay at initial level")
	}
}
