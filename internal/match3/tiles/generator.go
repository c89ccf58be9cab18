package tiles

import (
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
)

var (
	_ board.Generator[Gem] = (*Random)(nil)
	_ board.Generator[Gem] = (*Cycle)(nil)
)

// Random draws uniformly from the first k gem kinds.
// Two generators created with the same seed produce the same sequence.
type Random struct {
	rng   *rand.Rand
	kinds int
}

// NewRandom creates a seeded generator over kinds gem kinds.
func NewRandom(seed int64, kinds int) *Random {
	r := &Random{rng: rand.New(rand.NewSource(seed))}
	r.SetKinds(kinds)
	return r
}

// SetKinds changes how many kinds are drawn from, clamped to
// [MinKinds, GemCount]. Tiles already on the board are unaffected.
func (r *Random) SetKinds(kinds int) {
	r.kinds = min(max(kinds, MinKinds), int(GemCount))
}

// Kinds returns the active kind count.
func (r *Random) Kinds() int {
	return r.kinds
}

// Next returns a random gem.
func (r *Random) Next() Gem {
	return Gem(r.rng.Intn(r.kinds))
}

// Cycle yields a fixed list of gems in rotation.
type Cycle struct {
	gems []Gem
	pos  int
}

// NewCycle creates a rotating generator. An empty list yields Ruby forever.
func NewCycle(gems ...Gem) *Cycle {
	if len(gems) == 0 {
		gems = []Gem{Ruby}
	}
	return &Cycle{gems: gems}
}

// Next returns the next gem in the rotation.
func (c *Cycle) Next() Gem {
	g := c.gems[c.pos]
	c.pos = (c.pos + 1) % len(c.gems)
	return g
}
