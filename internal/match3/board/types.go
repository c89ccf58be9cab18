// Package board provides the tile-matching grid engine for match3.
// It validates swaps, detects runs, clears them, applies gravity and refills
// until the grid is stable. This package is UI-agnostic and deterministic
// given a deterministic Generator.
package board

import "fmt"

// Position is a row/column coordinate on the grid.
// Row increases downward, Col increases to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Cell is either Filled with a tile or Empty.
type Cell[T comparable] struct {
	value  T
	filled bool
}

// Filled returns a cell holding v.
func Filled[T comparable](v T) Cell[T] {
	return Cell[T]{value: v, filled: true}
}

// Empty returns an empty cell.
func Empty[T comparable]() Cell[T] {
	return Cell[T]{}
}

// Value returns the tile and true, or the zero value and false if empty.
func (c Cell[T]) Value() (T, bool) {
	return c.value, c.filled
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell[T]) IsEmpty() bool {
	return !c.filled
}

// Generator supplies new tile values on demand.
type Generator[T comparable] interface {
	Next() T
}

// GeneratorFunc adapts a plain function to a Generator.
type GeneratorFunc[T comparable] func() T

// Next calls f.
func (f GeneratorFunc[T]) Next() T {
	return f()
}

// Match is one contiguous straight run of identical tiles.
// Positions are ordered left to right or top to bottom.
type Match[T comparable] struct {
	Matched   T
	Positions []Position
}

// Horizontal reports whether the run lies along a single row.
func (m Match[T]) Horizontal() bool {
	return len(m.Positions) > 1 && m.Positions[0].Row == m.Positions[1].Row
}

// Len returns the run length.
func (m Match[T]) Len() int {
	return len(m.Positions)
}

// EffectKind tags an Effect.
type EffectKind int

const (
	EffectMatch EffectKind = iota
	EffectRefill
)

// String returns a human-readable name for the effect kind.
func (k EffectKind) String() string {
	switch k {
	case EffectMatch:
		return "Match"
	case EffectRefill:
		return "Refill"
	default:
		return "Unknown"
	}
}

// Effect is an observable step of a move: a cleared Match or a Refill pass.
// Match is only meaningful when Kind is EffectMatch.
type Effect[T comparable] struct {
	Kind  EffectKind
	Match Match[T]
}

// MatchEffect wraps m in an Effect.
func MatchEffect[T comparable](m Match[T]) Effect[T] {
	return Effect[T]{Kind: EffectMatch, Match: m}
}

// RefillEffect returns a Refill effect.
func RefillEffect[T comparable]() Effect[T] {
	return Effect[T]{Kind: EffectRefill}
}

// Listener receives effects synchronously while a move resolves.
type Listener[T comparable] func(Effect[T])

// Adjacency selects which position pairs may be swapped.
type Adjacency int

const (
	// AdjacentOnly allows swapping grid neighbors only (distance 1).
	AdjacentOnly Adjacency = iota
	// SameLine allows swapping any two positions sharing a row or column.
	SameLine
)

// String returns the config name of the adjacency rule.
func (a Adjacency) String() string {
	switch a {
	case AdjacentOnly:
		return "adjacent"
	case SameLine:
		return "line"
	default:
		return "unknown"
	}
}

// ParseAdjacency converts a config string to an Adjacency.
func ParseAdjacency(s string) (Adjacency, bool) {
	switch s {
	case "", "adjacent":
		return AdjacentOnly, true
	case "line":
		return SameLine, true
	default:
		return AdjacentOnly, false
	}
}

// Granularity selects how long runs are reported.
type Granularity int

const (
	// MaximalRuns reports each run once with its full length.
	MaximalRuns Granularity = iota
	// OverlappingTriples splits a run of n into n-2 overlapping 3-matches.
	OverlappingTriples
)

// String returns the config name of the granularity.
func (g Granularity) String() string {
	switch g {
	case MaximalRuns:
		return "maximal"
	case OverlappingTriples:
		return "triples"
	default:
		return "unknown"
	}
}

// ParseGranularity converts a config string to a Granularity.
func ParseGranularity(s string) (Granularity, bool) {
	switch s {
	case "", "maximal":
		return MaximalRuns, true
	case "triples":
		return OverlappingTriples, true
	default:
		return MaximalRuns, false
	}
}

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// Rules configures the variant behaviors of a grid.
type Rules struct {
	Adjacency   Adjacency
	Granularity Granularity
	MaxPasses   int // Cascade pass cap per move, 0 = unlimited
}

// DefaultRules returns neighbor-only swaps, maximal runs and no pass cap.
func DefaultRules() Rules {
	return Rules{
		Adjacency:   AdjacentOnly,
		Granularity: MaximalRuns,
		MaxPasses:   0,
	}
}
