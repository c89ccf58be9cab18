package levels_test

import (
	"errors"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
)

func testdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "boards")
}

func TestLoaderLoadAllSkipsInvalid(t *testing.T) {
	lvls, err := levels.NewLoader(testdataPath()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	var ids []string
	for _, l := range lvls {
		ids = append(ids, l.ID)
	}
	if !slices.Equal(ids, []string{"alpha", "beta"}) {
		t.Errorf("ids = %v, want [alpha beta]", ids)
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	loader := levels.NewLoader(testdataPath())
	for _, name := range []string{"bad_gem.yaml", "ragged.yaml", "bad_rules.yaml", "README.txt", "missing.yaml"} {
		t.Run(name, func(t *testing.T) {
			if _, err := loader.LoadFile(name); err == nil {
				t.Errorf("LoadFile(%s) succeeded", name)
			}
		})
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(testdataPath())

	lvl, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Width() != 4 || lvl.Height() != 1 {
		t.Errorf("size = %dx%d, want 4x1", lvl.Width(), lvl.Height())
	}
	if lvl.Rules.Adjacency != board.SameLine || lvl.Rules.Granularity != board.MaximalRuns || lvl.Rules.MaxPasses != 3 {
		t.Errorf("rules = %+v", lvl.Rules)
	}
	if len(lvl.Refill) != 0 {
		t.Errorf("refill = %v, want none", lvl.Refill)
	}

	if _, err := loader.LoadByID("nope"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestNewGridNeedsGenerator(t *testing.T) {
	lvl, err := levels.NewLoader(testdataPath()).LoadByID("beta")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := lvl.NewGrid(nil); err == nil {
		t.Error("expected error without refill or fallback")
	}
	g, err := lvl.NewGrid(tiles.NewCycle(tiles.Onyx))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Width() != 4 || g.Rules().MaxPasses != 3 {
		t.Errorf("grid = %dx%d %+v", g.Width(), g.Height(), g.Rules())
	}
}

func TestBuiltinCascade(t *testing.T) {
	loader := levels.Builtin()
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if !slices.Contains(ids, "cascade") || !slices.IsSorted(ids) {
		t.Fatalf("ids = %v", ids)
	}

	lvl, err := loader.LoadByID("cascade")
	if err != nil {
		t.Fatal(err)
	}
	g, err := lvl.NewGrid(nil)
	if err != nil {
		t.Fatal(err)
	}

	effects := g.Move(board.P(0, 1), board.P(1, 1))
	if board.CountPasses(effects) != 1 || len(effects) != 2 {
		t.Fatalf("effects = %v", effects)
	}
	var got []string
	for _, row := range g.Rows() {
		got = append(got, tiles.FormatRow(row))
	}
	want := []string{"TAT", "RSE", "SEE"}
	if !slices.Equal(got, want) {
		t.Errorf("grid = %v, want %v", got, want)
	}
}

func TestBuiltinBoardsAreValid(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(lvls) != 4 {
		t.Fatalf("got %d builtin boards, want 4", len(lvls))
	}
	for _, lvl := range lvls {
		if _, err := lvl.NewGrid(tiles.NewRandom(1, 5)); err != nil {
			t.Errorf("%s: %v", lvl.ID, err)
		}
	}
}

func TestCapPasses(t *testing.T) {
	lvl := levels.Level{Rules: board.DefaultRules()}
	lvl.CapPasses(0)
	if lvl.Rules.MaxPasses != 0 {
		t.Errorf("CapPasses(0) set %d", lvl.Rules.MaxPasses)
	}
	lvl.CapPasses(64)
	if lvl.Rules.MaxPasses != 64 {
		t.Errorf("MaxPasses = %d, want 64", lvl.Rules.MaxPasses)
	}
	lvl.CapPasses(5)
	if lvl.Rules.MaxPasses != 64 {
		t.Errorf("explicit cap overwritten: %d", lvl.Rules.MaxPasses)
	}
}
