package match3

import (
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
)

// MoveResult summarizes the effects of one move.
type MoveResult struct {
	Points  int
	Matches int
	Tiles   int // Matched positions, counted once per match
	Passes  int
}

// Tally folds a move's effects into points.
// Each match scores its length times PointsPerTile, multiplied by
// 1 + CascadeBonus for every pass after the first.
func Tally(effects []board.Effect[tiles.Gem], sc config.ScoringConfig) MoveResult {
	var res MoveResult
	pass := 1
	for _, e := range effects {
		switch e.Kind {
		case board.EffectMatch:
			mult := 1 + (pass-1)*sc.CascadeBonus
			res.Points += e.Match.Len() * sc.PointsPerTile * mult
			res.Tiles += e.Match.Len()
			res.Matches++
		case board.EffectRefill:
			res.Passes++
			pass++
		}
	}
	return res
}
