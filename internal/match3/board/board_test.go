package board_test

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
)

// cycle yields its values in rotation.
type cycle struct {
	vals []rune
	i    int
}

func (c *cycle) Next() rune {
	v := c.vals[c.i%len(c.vals)]
	c.i++
	return v
}

func newCycle(s string) *cycle {
	return &cycle{vals: []rune(s)}
}

// xorshift is a tiny deterministic generator over the first k letters.
type xorshift struct {
	state uint32
	k     uint32
}

func (x *xorshift) Next() rune {
	x.state ^= x.state << 13
	x.state ^= x.state >> 17
	x.state ^= x.state << 5
	return 'A' + rune(x.state%x.k)
}

func mustGrid(t *testing.T, gen board.Generator[rune], rules board.Rules, rows ...string) *board.Grid[rune] {
	t.Helper()
	rr := make([][]rune, len(rows))
	for i, r := range rows {
		rr[i] = []rune(r)
	}
	g, err := board.FromRows(gen, rr, rules)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func rowsString(g *board.Grid[rune]) []string {
	var out []string
	for _, row := range g.Rows() {
		out = append(out, string(row))
	}
	return out
}

func cascadeFixture(t *testing.T) *board.Grid[rune] {
	return mustGrid(t, newCycle("DE"), board.DefaultRules(), "ABA", "AAC", "BCC")
}

func TestNewFillsRowMajor(t *testing.T) {
	n := 0
	gen := board.GeneratorFunc[int](func() int {
		n++
		return n
	})
	g := board.New[int](gen, 3, 2)

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
	want := [][]int{{1, 2, 3}, {4, 5, 6}}
	for r, row := range g.Rows() {
		if !slices.Equal(row, want[r]) {
			t.Errorf("row %d = %v, want %v", r, row, want[r])
		}
	}
}

func TestNewKeepsInitialMatches(t *testing.T) {
	g := board.New[rune](newCycle("A"), 3, 3)
	if _, found := g.FindMatches(); !found {
		t.Error("initial matches should be left for the caller")
	}
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	gen := newCycle("A")
	tests := []struct {
		name string
		rows [][]rune
	}{
		{"nil", nil},
		{"empty row", [][]rune{{}}},
		{"ragged", [][]rune{[]rune("AB"), []rune("A")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := board.FromRows[rune](gen, tt.rows, board.DefaultRules()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPositions(t *testing.T) {
	g := cascadeFixture(t)

	var got []board.Position
	for p := range g.Positions() {
		got = append(got, p)
	}
	if len(got) != 9 {
		t.Fatalf("got %d positions, want 9", len(got))
	}
	if got[0] != board.P(0, 0) || got[1] != board.P(0, 1) || got[3] != board.P(1, 0) || got[8] != board.P(2, 2) {
		t.Errorf("positions not row-major: %v", got)
	}

	// Restartable and stops early.
	count := 0
	for range g.Positions() {
		count++
		if count == 4 {
			break
		}
	}
	if count != 4 {
		t.Errorf("early break count = %d", count)
	}
}

func TestPieceOutOfRange(t *testing.T) {
	g := cascadeFixture(t)
	for _, p := range []board.Position{board.P(-1, 0), board.P(0, -1), board.P(3, 0), board.P(0, 3)} {
		if _, ok := g.Piece(p); ok {
			t.Errorf("Piece(%v) returned a tile", p)
		}
	}
	if v, ok := g.Piece(board.P(2, 1)); !ok || v != 'C' {
		t.Errorf("Piece(2,1) = %q, %v", v, ok)
	}
}

func TestFindMatchesMaximalRun(t *testing.T) {
	g := mustGrid(t, newCycle("X"), board.DefaultRules(), "AAAAB")

	matches, found := g.FindMatches()
	if !found || len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Matched != 'A' || m.Len() != 4 || !m.Horizontal() {
		t.Errorf("match = %+v", m)
	}
	want := []board.Position{board.P(0, 0), board.P(0, 1), board.P(0, 2), board.P(0, 3)}
	if !slices.Equal(m.Positions, want) {
		t.Errorf("positions = %v, want %v", m.Positions, want)
	}
}

func TestFindMatchesOverlappingTriples(t *testing.T) {
	rules := board.DefaultRules()
	rules.Granularity = board.OverlappingTriples
	g := mustGrid(t, newCycle("X"), rules, "AAAAB")

	matches, _ := g.FindMatches()
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Positions[0] != board.P(0, 0) || matches[1].Positions[0] != board.P(0, 1) {
		t.Errorf("triples = %v", matches)
	}
	for _, m := range matches {
		if m.Len() != 3 {
			t.Errorf("triple length = %d", m.Len())
		}
	}
}

func TestFindMatchesIntersection(t *testing.T) {
	g := mustGrid(t, newCycle("X"), board.DefaultRules(), "AAA", "ABC", "ACB")

	matches, _ := g.FindMatches()
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if !matches[0].Horizontal() || matches[1].Horizontal() {
		t.Error("rows must be reported before columns")
	}
	if matches[0].Positions[0] != board.P(0, 0) || matches[1].Positions[0] != board.P(0, 0) {
		t.Error("corner should appear in both matches")
	}
}

func TestFindMatchesNone(t *testing.T) {
	g := cascadeFixture(t)
	if matches, found := g.FindMatches(); found || len(matches) != 0 {
		t.Errorf("unexpected matches: %v", matches)
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		a, b board.Position
		want bool
	}{
		{"equal values vertical", board.P(1, 0), board.P(0, 0), false},
		{"equal values", board.P(1, 2), board.P(2, 2), false},
		{"same position", board.P(0, 1), board.P(0, 1), false},
		{"diagonal", board.P(0, 0), board.P(1, 1), false},
		{"out of range", board.P(0, 2), board.P(0, 3), false},
		{"negative", board.P(0, 0), board.P(-1, 0), false},
		{"forms row run", board.P(0, 1), board.P(1, 1), true},
		{"forms run on other line", board.P(1, 2), board.P(0, 2), true},
		{"no run", board.P(0, 0), board.P(0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := cascadeFixture(t)
			if got := g.CanMove(tt.a, tt.b); got != tt.want {
				t.Errorf("CanMove(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := g.CanMove(tt.b, tt.a); got != tt.want {
				t.Errorf("CanMove(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestCanMoveIsPure(t *testing.T) {
	g := cascadeFixture(t)
	before := g.Clone()

	for a := range g.Positions() {
		for b := range g.Positions() {
			g.CanMove(a, b)
			g.CanMove(a, b)
		}
	}
	if !g.Equal(before) {
		t.Errorf("grid changed: %v", rowsString(g))
	}
}

func TestGridEqual(t *testing.T) {
	g := cascadeFixture(t)
	var none *board.Grid[rune]
	tests := []struct {
		name  string
		a, b  *board.Grid[rune]
		equal bool
	}{
		{"clone", g, g.Clone(), true},
		{"different cells", g, mustGrid(t, newCycle("DE"), board.DefaultRules(), "ABA", "AAC", "BCA"), false},
		{"different size", g, mustGrid(t, newCycle("DE"), board.DefaultRules(), "ABA", "AAC"), false},
		{"nil other", g, nil, false},
		{"nil receiver", none, g, false},
		{"both nil", none, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestMoveNoOp(t *testing.T) {
	pairs := [][2]board.Position{
		{board.P(1, 0), board.P(0, 0)},
		{board.P(1, 2), board.P(2, 2)},
		{board.P(0, 0), board.P(2, 2)},
		{board.P(0, 0), board.P(0, 1)},
		{board.P(0, 0), board.P(5, 5)},
	}
	for _, pair := range pairs {
		g := cascadeFixture(t)
		before := g.Clone()
		calls := 0
		g.AddListener(func(board.Effect[rune]) { calls++ })

		effects := g.Move(pair[0], pair[1])
		if len(effects) != 0 || calls != 0 {
			t.Errorf("Move(%v, %v) produced effects", pair[0], pair[1])
		}
		if !g.Equal(before) {
			t.Errorf("Move(%v, %v) changed the grid", pair[0], pair[1])
		}
	}
}

func TestMoveCascadeExample(t *testing.T) {
	g := cascadeFixture(t)

	effects := g.Move(board.P(0, 1), board.P(1, 1))
	if len(effects) != 2 {
		t.Fatalf("got %d effects, want 2: %v", len(effects), effects)
	}
	if effects[0].Kind != board.EffectMatch || effects[1].Kind != board.EffectRefill {
		t.Fatalf("effect kinds = %v, %v", effects[0].Kind, effects[1].Kind)
	}
	m := effects[0].Match
	if m.Matched != 'A' || !slices.Equal(m.Positions, []board.Position{board.P(0, 0), board.P(0, 1), board.P(0, 2)}) {
		t.Errorf("match = %+v", m)
	}

	want := []string{"DED", "ABC", "BCC"}
	if got := rowsString(g); !slices.Equal(got, want) {
		t.Errorf("grid = %v, want %v", got, want)
	}
	if _, found := g.FindMatches(); found {
		t.Error("grid not stable after move")
	}
	if board.CountPasses(effects) != 1 {
		t.Errorf("passes = %d", board.CountPasses(effects))
	}
}

func TestMoveGravityHorizontalClear(t *testing.T) {
	g := mustGrid(t, newCycle("FG"), board.DefaultRules(),
		"BCD",
		"CDB",
		"AAE",
		"EBA",
	)

	effects := g.Move(board.P(2, 2), board.P(3, 2))
	if board.CountPasses(effects) != 1 {
		t.Fatalf("passes = %d, effects %v", board.CountPasses(effects), effects)
	}
	want := []string{"FGF", "BCD", "CDB", "EBE"}
	if got := rowsString(g); !slices.Equal(got, want) {
		t.Errorf("grid = %v, want %v", got, want)
	}
}

func TestMoveGravityVerticalClear(t *testing.T) {
	g := mustGrid(t, newCycle("EF"), board.DefaultRules(),
		"ABC",
		"CBA",
		"BAB",
		"CDC",
	)

	effects := g.Move(board.P(2, 1), board.P(2, 0))
	if len(effects) != 2 || effects[0].Match.Horizontal() {
		t.Fatalf("effects = %v", effects)
	}
	// The survivor below the run stays put; new tiles only appear on top.
	want := []string{"AEC", "CFA", "AEB", "CDC"}
	if got := rowsString(g); !slices.Equal(got, want) {
		t.Errorf("grid = %v, want %v", got, want)
	}
}

func TestMoveMultiplePasses(t *testing.T) {
	// The first refill recreates the run; the second settles the grid.
	g := mustGrid(t, newCycle("AAAB"), board.DefaultRules(), "AABA")

	effects := g.Move(board.P(0, 2), board.P(0, 3))
	if got := board.CountPasses(effects); got != 2 {
		t.Fatalf("passes = %d, want 2", got)
	}
	kinds := make([]board.EffectKind, len(effects))
	for i, e := range effects {
		kinds[i] = e.Kind
	}
	wantKinds := []board.EffectKind{board.EffectMatch, board.EffectRefill, board.EffectMatch, board.EffectRefill}
	if !slices.Equal(kinds, wantKinds) {
		t.Errorf("kinds = %v, want %v", kinds, wantKinds)
	}
	if got := rowsString(g); got[0] != "BAAB" {
		t.Errorf("grid = %v", got)
	}
}

func TestMoveMaxPassesCap(t *testing.T) {
	rules := board.DefaultRules()
	rules.MaxPasses = 5
	g := mustGrid(t, newCycle("A"), rules, "AABA")

	effects := g.Move(board.P(0, 2), board.P(0, 3))
	if got := board.CountPasses(effects); got != 5 {
		t.Errorf("passes = %d, want 5", got)
	}
	if len(effects) != 10 {
		t.Errorf("effects = %d, want 10", len(effects))
	}
}

func TestMoveTerminatesWithRotatingGenerator(t *testing.T) {
	gen := &xorshift{state: 2463534242, k: 4}
	g := board.New[rune](gen, 8, 8)

	for i := 0; i < 20; i++ {
		a, b, ok := g.Hint()
		if !ok {
			break
		}
		effects := g.Move(a, b)
		if len(effects) == 0 {
			t.Fatalf("hinted move %v-%v produced no effects", a, b)
		}
		if passes := board.CountPasses(effects); passes > g.Width()*g.Height() {
			t.Fatalf("passes = %d", passes)
		}
		if _, found := g.FindMatches(); found {
			t.Fatal("grid not stable after move")
		}
	}
}

func TestListenersSeeReturnedOrder(t *testing.T) {
	g := mustGrid(t, newCycle("AAAB"), board.DefaultRules(), "AABA")

	var first, second []board.Effect[rune]
	var order []int
	g.AddListener(func(e board.Effect[rune]) {
		first = append(first, e)
		order = append(order, 1)
	})
	g.AddListener(func(e board.Effect[rune]) {
		second = append(second, e)
		order = append(order, 2)
	})
	g.AddListener(nil)

	effects := g.Move(board.P(0, 2), board.P(0, 3))
	if len(first) != len(effects) || len(second) != len(effects) {
		t.Fatalf("listener saw %d/%d effects, returned %d", len(first), len(second), len(effects))
	}
	for i := range effects {
		if first[i].Kind != effects[i].Kind || second[i].Kind != effects[i].Kind {
			t.Errorf("effect %d out of order", i)
		}
	}
	for i := 0; i < len(order); i += 2 {
		if order[i] != 1 || order[i+1] != 2 {
			t.Fatalf("listeners not called in registration order: %v", order)
		}
	}
}

func TestSameLineAdjacency(t *testing.T) {
	rules := board.DefaultRules()
	rules.Adjacency = board.SameLine

	g := mustGrid(t, newCycle("XY"), rules, "AACBA")
	if !g.CanMove(board.P(0, 2), board.P(0, 4)) {
		t.Error("line swap should be legal")
	}

	strict := mustGrid(t, newCycle("XY"), board.DefaultRules(), "AACBA")
	if strict.CanMove(board.P(0, 2), board.P(0, 4)) {
		t.Error("distance-2 swap legal under AdjacentOnly")
	}

	sq := mustGrid(t, newCycle("XY"), rules, "AB", "BA")
	if sq.CanMove(board.P(0, 0), board.P(1, 1)) {
		t.Error("diagonal swap legal under SameLine")
	}

	effects := g.Move(board.P(0, 2), board.P(0, 4))
	if board.CountPasses(effects) == 0 {
		t.Error("line move did not resolve")
	}
}

func TestHint(t *testing.T) {
	g := cascadeFixture(t)
	a, b, ok := g.Hint()
	if !ok || a != board.P(0, 1) || b != board.P(1, 1) {
		t.Errorf("Hint = %v %v %v", a, b, ok)
	}
	if !g.HasMoves() {
		t.Error("HasMoves = false")
	}

	stuck := mustGrid(t, newCycle("X"), board.DefaultRules(), "AB", "BA")
	if stuck.HasMoves() {
		t.Error("2x2 checkerboard has no moves")
	}
}

func TestParseRules(t *testing.T) {
	if a, ok := board.ParseAdjacency("line"); !ok || a != board.SameLine || a.String() != "line" {
		t.Errorf("ParseAdjacency(line) = %v, %v", a, ok)
	}
	if _, ok := board.ParseAdjacency("diagonal"); ok {
		t.Error("ParseAdjacency accepted diagonal")
	}
	if g, ok := board.ParseGranularity("triples"); !ok || g != board.OverlappingTriples || g.String() != "triples" {
		t.Errorf("ParseGranularity(triples) = %v, %v", g, ok)
	}
	if g, ok := board.ParseGranularity(""); !ok || g != board.MaximalRuns {
		t.Errorf("ParseGranularity(\"\") = %v, %v", g, ok)
	}
}
