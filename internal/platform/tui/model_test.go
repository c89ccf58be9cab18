package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// scriptedGame ends after a fixed number of confirms.
type scriptedGame struct {
	resets   int
	steps    int
	confirms int
	endAfter int
	last     core.InputFrame
	w, h     int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.confirms = 0
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	if in.Has(core.ActionConfirm) {
		g.confirms++
	}
	return core.StepResult{State: g.State(), Events: []string{"step"}}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    g.confirms * 10,
		Moves:    g.confirms,
		GameOver: g.confirms >= g.endAfter,
	}
}

func (g *scriptedGame) BestCascade() int { return 2 }

func (g *scriptedGame) Resize(w, h int) { g.w, g.h = w, h }

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	return update(t, m, TickMsg(time.Now()))
}

func TestGameModelForwardsInputOncePerTick(t *testing.T) {
	g := &scriptedGame{endAfter: 5}
	m := NewGameModel(g, nil, core.DefaultConfig(), "tester", nil)
	m.Init()

	m = update(t, m, runeKey("d"))
	m = tick(t, m)
	if !g.last.Has(core.ActionRight) {
		t.Error("first tick should see ActionRight")
	}
	m = tick(t, m)
	if !g.last.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
	if g.steps != 2 {
		t.Errorf("steps = %d", g.steps)
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{endAfter: 2}
	m := NewGameModel(g, store, core.DefaultConfig(), "tester", nil)
	m.Init()

	for range 2 {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = tick(t, m)
	}
	if !m.State().GameOver || !m.ScoreSaved() {
		t.Fatalf("state = %+v, saved = %v", m.State(), m.ScoreSaved())
	}
	m = tick(t, m)

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Player != "tester" || got.Score != 20 || got.Moves != 2 || got.Cascades != 2 {
		t.Errorf("saved entry = %+v", got)
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	m := NewGameModel(g, nil, core.DefaultConfig(), "", nil)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = update(t, m, runeKey("r"))
	m = tick(t, m)
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("still game over after restart")
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	m := NewGameModel(g, nil, core.DefaultConfig(), "", nil)
	m.Init()

	m = update(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Error("back should be ignored during play")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = update(t, m, runeKey("b"))
	if !m.BackToMenu() {
		t.Error("back should work after game over")
	}

	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit did not return tea.Quit")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{endAfter: 5}
	m := NewGameModel(g, nil, core.DefaultConfig(), "", nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if g.w != 100 || g.h != 40 {
		t.Errorf("game size = %dx%d", g.w, g.h)
	}
	if !strings.HasPrefix(m.View(), "scripted") {
		t.Errorf("View() = %q", m.View())
	}
}
