// Package match3 is the playable match3 game built on the board engine.
// It owns everything the engine leaves to its caller: cursor input,
// scoring, turn limits, difficulty and game over.
package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const (
	IDClassic = "match3"
	IDEndless = "match3_endless"

	// maxBoardAttempts bounds the search for a board with a legal move.
	maxBoardAttempts = 100
)

// Package-level settings applied to games created through the registry.
var (
	activeConfig = config.DefaultMatch3Config()
	startLevel   *levels.Level
)

// SetConfig sets the configuration used by subsequently created games.
func SetConfig(cfg config.Match3Config) {
	activeConfig = cfg
}

// SetStartLevel makes the next classic game start from a hand-built board.
// Pass nil to go back to random boards.
func SetStartLevel(lvl *levels.Level) {
	startLevel = lvl
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// Game implements a match3 session.
type Game struct {
	mode  Mode
	cfg   config.Match3Config
	level *levels.Level
	rules board.Rules
	diff  *config.DifficultyManager
	gen   *tiles.Random
	grid  *board.Grid[tiles.Gem]
	tick  uint64
	rate  int

	cursor    board.Position
	selected  board.Position
	hasSel    bool
	hintFrom  board.Position
	hintTo    board.Position
	hintTicks int
	flash     []board.Position
	flashTick int

	score       int
	moves       int
	matches     int
	bestCascade int
	lastGain    int
	shuffles    int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
	reason   string
}

// New creates a classic game using the active configuration.
func New() *Game {
	return NewWithConfig(ModeClassic, activeConfig)
}

// NewEndless creates an endless game using the active configuration.
func NewEndless() *Game {
	return NewWithConfig(ModeEndless, activeConfig)
}

// NewWithConfig creates a game with an explicit configuration.
// Invalid rule names fall back to the default rules.
func NewWithConfig(mode Mode, cfg config.Match3Config) *Game {
	rules, err := cfg.EngineRules()
	if err != nil {
		rules = board.DefaultRules()
	}
	g := &Game{
		mode:  mode,
		cfg:   cfg,
		rules: rules,
	}
	if mode == ModeClassic {
		g.level = startLevel
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match3 (Endless)"
	}
	return "Match3"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.rate = cfg.TickRate
	if g.rate <= 0 {
		g.rate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.gen = tiles.NewRandom(cfg.Seed, g.cfg.Board.Kinds)

	g.score = 0
	g.moves = 0
	g.matches = 0
	g.bestCascade = 0
	g.lastGain = 0
	g.shuffles = 0
	g.gameOver = false
	g.paused = false
	g.reason = ""
	g.hasSel = false
	g.hintTicks = 0
	g.flash = nil
	g.flashTick = 0

	g.setGrid(g.startGrid())
	g.cursor = board.P(g.grid.Height()/2, g.grid.Width()/2)
	g.checkScreenSize()
	g.checkEnd()
}

// startGrid builds the opening board, from the start level when set.
func (g *Game) startGrid() *board.Grid[tiles.Gem] {
	if g.level != nil {
		lvl := *g.level
		lvl.CapPasses(g.rules.MaxPasses)
		if grid, err := lvl.NewGrid(g.gen); err == nil {
			return grid
		}
	}
	return g.randomGrid(g.cfg.Board.Width, g.cfg.Board.Height)
}

// randomGrid draws a w×h board with no matches, retrying until it also
// has a legal move. After maxBoardAttempts it settles for the last draw.
func (g *Game) randomGrid(w, h int) *board.Grid[tiles.Gem] {
	var grid *board.Grid[tiles.Gem]
	for range maxBoardAttempts {
		rows := make([][]tiles.Gem, h)
		for r := range rows {
			rows[r] = make([]tiles.Gem, w)
			for c := range rows[r] {
				rows[r][c] = g.drawFree(rows, r, c)
			}
		}
		var err error
		grid, err = board.FromRows(board.Generator[tiles.Gem](g.gen), rows, g.rules)
		if err == nil && grid.HasMoves() {
			break
		}
	}
	return grid
}

// drawFree draws gems until one would not complete a run with the two
// gems to its left or the two above it.
func (g *Game) drawFree(rows [][]tiles.Gem, r, c int) tiles.Gem {
	for {
		gem := g.gen.Next()
		if c >= 2 && rows[r][c-1] == gem && rows[r][c-2] == gem {
			continue
		}
		if r >= 2 && rows[r-1][c] == gem && rows[r-2][c] == gem {
			continue
		}
		return gem
	}
}

func (g *Game) setGrid(grid *board.Grid[tiles.Gem]) {
	g.grid = grid
	g.grid.AddListener(g.onEffect)
}

// onEffect records cleared positions so the renderer can flash them.
func (g *Game) onEffect(e board.Effect[tiles.Gem]) {
	if e.Kind == board.EffectMatch {
		g.flash = append(g.flash, e.Match.Positions...)
	}
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.grid.Width(), g.grid.Height())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.grid != nil {
		g.checkScreenSize()
	}
}

// turnLimit returns the active turn limit, 0 for none.
func (g *Game) turnLimit() int {
	if g.mode == ModeEndless {
		return 0
	}
	if g.level != nil && g.level.Turns > 0 {
		return g.level.Turns
	}
	return g.cfg.Turns.Limit
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.hintTicks > 0 {
		g.hintTicks--
	}
	if g.flashTick > 0 {
		g.flashTick--
		if g.flashTick == 0 {
			g.flash = nil
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var events []string
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	switch {
	case in.Has(core.ActionCancel):
		g.hasSel = false
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionConfirm):
		events = g.confirm()
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor = board.P(
		core.Clamp(g.cursor.Row+dr, 0, g.grid.Height()-1),
		core.Clamp(g.cursor.Col+dc, 0, g.grid.Width()-1),
	)
}

func (g *Game) showHint() {
	a, b, ok := g.grid.Hint()
	if !ok {
		return
	}
	g.hintFrom, g.hintTo = a, b
	g.hintTicks = 2 * g.rate
}

// confirm selects the tile under the cursor, or swaps it with the
// selected tile when the swap is legal.
func (g *Game) confirm() []string {
	switch {
	case !g.hasSel:
		g.selected, g.hasSel = g.cursor, true
		return nil
	case g.selected == g.cursor:
		g.hasSel = false
		return nil
	case !g.grid.CanMove(g.selected, g.cursor):
		g.selected = g.cursor
		return []string{"no match"}
	}

	from := g.selected
	g.hasSel = false
	return g.Swap(from, g.cursor)
}

// Swap plays a move directly and returns the resulting events.
// Illegal moves change nothing and return nil.
func (g *Game) Swap(a, b board.Position) []string {
	if g.gameOver {
		return nil
	}
	g.flash = nil
	effects := g.grid.Move(a, b)
	if len(effects) == 0 {
		return nil
	}

	res := Tally(effects, g.cfg.Scoring)
	g.score += res.Points
	g.moves++
	g.matches += res.Matches
	g.bestCascade = max(g.bestCascade, res.Passes)
	g.lastGain = res.Points
	g.hintTicks = 0
	g.flashTick = max(g.rate/3, 1)

	events := []string{fmt.Sprintf("+%d", res.Points)}
	if res.Passes > 1 {
		events = append(events, fmt.Sprintf("cascade x%d", res.Passes))
	}

	g.applyDifficulty()
	if shuffled := g.checkEnd(); shuffled {
		events = append(events, "shuffle")
	}
	return events
}

// applyDifficulty widens the gem variety as the game progresses.
func (g *Game) applyDifficulty() {
	g.gen.SetKinds(g.cfg.Board.Kinds + g.diff.ExtraKinds(g.score, g.moves))
}

// checkEnd ends a classic game on its turn limit or when the board is
// stuck. A stuck endless board is replaced instead; it reports true then.
func (g *Game) checkEnd() bool {
	if limit := g.turnLimit(); limit > 0 && g.moves >= limit {
		g.gameOver = true
		g.reason = "Out of turns"
		return false
	}
	if g.grid.HasMoves() {
		return false
	}
	if g.mode == ModeEndless {
		g.setGrid(g.randomGrid(g.grid.Width(), g.grid.Height()))
		g.shuffles++
		return true
	}
	g.gameOver = true
	g.reason = "No moves left"
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// BestCascade returns the longest cascade so far, in passes.
func (g *Game) BestCascade() int {
	return g.bestCascade
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Space: Select/Swap | H: Hint | P: Pause | Q: Quit"
}
