// Package tiles defines the gem tiles used by the match3 game and the
// generators that feed them into a board.
package tiles

import "strings"

// Gem is a tile kind.
type Gem uint8

const (
	Ruby Gem = iota
	Emerald
	Sapphire
	Topaz
	Amethyst
	Pearl
	Onyx
	GemCount // Sentinel value for iteration
)

// MinKinds is the fewest kinds a playable board can use.
const MinKinds = 3

// String returns the gem name.
func (g Gem) String() string {
	switch g {
	case Ruby:
		return "ruby"
	case Emerald:
		return "emerald"
	case Sapphire:
		return "sapphire"
	case Topaz:
		return "topaz"
	case Amethyst:
		return "amethyst"
	case Pearl:
		return "pearl"
	case Onyx:
		return "onyx"
	default:
		return "unknown"
	}
}

// Char returns the single-letter form used in board files and ASCII output.
func (g Gem) Char() rune {
	switch g {
	case Ruby:
		return 'R'
	case Emerald:
		return 'E'
	case Sapphire:
		return 'S'
	case Topaz:
		return 'T'
	case Amethyst:
		return 'A'
	case Pearl:
		return 'P'
	case Onyx:
		return 'O'
	default:
		return '?'
	}
}

// ParseGem converts a name or letter to a Gem.
// Returns Ruby and false if the string is not recognized.
func ParseGem(s string) (Gem, bool) {
	switch strings.ToLower(s) {
	case "ruby", "r":
		return Ruby, true
	case "emerald", "e":
		return Emerald, true
	case "sapphire", "s":
		return Sapphire, true
	case "topaz", "t":
		return Topaz, true
	case "amethyst", "a":
		return Amethyst, true
	case "pearl", "p":
		return Pearl, true
	case "onyx", "o":
		return Onyx, true
	default:
		return Ruby, false
	}
}

// ParseRow converts a string of gem letters such as "RSE" to gems.
// It returns the offending index when a letter is unknown.
func ParseRow(s string) ([]Gem, int, bool) {
	row := make([]Gem, 0, len(s))
	for i, r := range []rune(s) {
		g, ok := ParseGem(string(r))
		if !ok {
			return nil, i, false
		}
		row = append(row, g)
	}
	return row, -1, true
}

// FormatRow is the inverse of ParseRow.
func FormatRow(row []Gem) string {
	var b strings.Builder
	for _, g := range row {
		b.WriteRune(g.Char())
	}
	return b.String()
}

// AllGems returns every gem kind in order.
func AllGems() []Gem {
	gems := make([]Gem, 0, GemCount)
	for g := Ruby; g < GemCount; g++ {
		gems = append(gems, g)
	}
	return gems
}
