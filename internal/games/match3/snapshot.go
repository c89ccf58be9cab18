package match3

import (
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Score       int
	Moves       int
	Matches     int
	BestCascade int
	Shuffles    int
	Kinds       int
	Board       []string // Gem letters, top row first
	Cursor      board.Position
	Selected    *board.Position
	State       GameStateType
	Reason      string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	rows := g.grid.Rows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = tiles.FormatRow(row)
	}

	var sel *board.Position
	if g.hasSel {
		p := g.selected
		sel = &p
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Score:       g.score,
		Moves:       g.moves,
		Matches:     g.matches,
		BestCascade: g.bestCascade,
		Shuffles:    g.shuffles,
		Kinds:       g.gen.Kinds(),
		Board:       lines,
		Cursor:      g.cursor,
		Selected:    sel,
		State:       state,
		Reason:      g.reason,
	}
}
