// Package formats provides board file format parsers.
package formats

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
	"gopkg.in/yaml.v3"
)

// YAMLBoard represents the YAML structure for a board file.
type YAMLBoard struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Refill   string            `yaml:"refill,omitempty"`
	Rules    YAMLRules         `yaml:"rules,omitempty"`
	Turns    int               `yaml:"turns,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLRules mirrors board.Rules with config-friendly names.
type YAMLRules struct {
	Adjacency   string `yaml:"adjacency,omitempty"`   // adjacent | line
	Granularity string `yaml:"granularity,omitempty"` // maximal | triples
	MaxPasses   int    `yaml:"max_passes,omitempty"`
}

// Board represents a parsed board ready for use.
type Board struct {
	ID       string
	Name     string
	Rows     [][]tiles.Gem
	Refill   []tiles.Gem
	Rules    board.Rules
	Turns    int
	Metadata map[string]string
}

// ParseYAML parses a YAML board file.
func ParseYAML(data []byte) (Board, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yb.ID == "" {
		return Board{}, errors.New("missing id")
	}
	if len(yb.Rows) == 0 {
		return Board{}, errors.New("missing rows")
	}

	rules, err := yb.Rules.ToRules()
	if err != nil {
		return Board{}, err
	}

	b := Board{
		ID:       yb.ID,
		Name:     yb.Name,
		Rules:    rules,
		Turns:    yb.Turns,
		Metadata: yb.Metadata,
	}

	width := len([]rune(yb.Rows[0]))
	for r, s := range yb.Rows {
		row, idx, ok := tiles.ParseRow(s)
		if !ok {
			return Board{}, fmt.Errorf("row %d: unknown gem at column %d", r, idx)
		}
		if len(row) != width {
			return Board{}, fmt.Errorf("row %d has %d gems, want %d", r, len(row), width)
		}
		b.Rows = append(b.Rows, row)
	}

	refill, idx, ok := tiles.ParseRow(yb.Refill)
	if !ok {
		return Board{}, fmt.Errorf("refill: unknown gem at %d", idx)
	}
	b.Refill = refill

	return b, nil
}

// ToRules converts the YAML rule names to board.Rules.
func (r YAMLRules) ToRules() (board.Rules, error) {
	rules := board.DefaultRules()
	adj, ok := board.ParseAdjacency(r.Adjacency)
	if !ok {
		return rules, fmt.Errorf("unknown adjacency %q", r.Adjacency)
	}
	gran, ok := board.ParseGranularity(r.Granularity)
	if !ok {
		return rules, fmt.Errorf("unknown granularity %q", r.Granularity)
	}
	if r.MaxPasses < 0 {
		return rules, fmt.Errorf("max_passes must be >= 0, got %d", r.MaxPasses)
	}
	rules.Adjacency = adj
	rules.Granularity = gran
	rules.MaxPasses = r.MaxPasses
	return rules, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
