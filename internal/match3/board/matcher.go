package board

// line is one row or column of the grid, walked from start in steps of (dr, dc).
type line struct {
	start  Position
	dr, dc int
	n      int
}

func (l line) at(i int) Position {
	return P(l.start.Row+i*l.dr, l.start.Col+i*l.dc)
}

func (g *Grid[T]) rowLine(row int) line {
	return line{start: P(row, 0), dc: 1, n: g.width}
}

func (g *Grid[T]) colLine(col int) line {
	return line{start: P(0, col), dr: 1, n: g.height}
}

// sameTile reports whether two cells hold the same tile. Empty never matches.
func sameTile[T comparable](a, b Cell[T]) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	return aok && bok && av == bv
}

// scanLine walks l tracking the running tile and run length, and calls emit
// for every run of at least MinRun identical tiles, split according to gran.
// cellAt lets callers scan a hypothetical grid without writing to it.
func scanLine[T comparable](l line, cellAt func(Position) Cell[T], gran Granularity, emit func(Match[T])) {
	runStart := 0
	for i := 1; i <= l.n; i++ {
		if i < l.n && sameTile(cellAt(l.at(i)), cellAt(l.at(runStart))) {
			continue
		}
		length := i - runStart
		if v, ok := cellAt(l.at(runStart)).Value(); ok && length >= MinRun {
			emitRun(l, runStart, length, v, gran, emit)
		}
		runStart = i
	}
}

func emitRun[T comparable](l line, start, length int, v T, gran Granularity, emit func(Match[T])) {
	if gran == OverlappingTriples {
		for k := start; k+MinRun <= start+length; k++ {
			emit(runMatch(l, k, MinRun, v))
		}
		return
	}
	emit(runMatch(l, start, length, v))
}

func runMatch[T comparable](l line, start, length int, v T) Match[T] {
	positions := make([]Position, length)
	for i := range positions {
		positions[i] = l.at(start + i)
	}
	return Match[T]{Matched: v, Positions: positions}
}

// FindMatches scans every row top to bottom and then every column left to
// right and returns all runs of MinRun or more identical tiles.
// A tile on both a horizontal and a vertical run appears in two matches.
func (g *Grid[T]) FindMatches() ([]Match[T], bool) {
	var matches []Match[T]
	emit := func(m Match[T]) {
		matches = append(matches, m)
	}
	for row := 0; row < g.height; row++ {
		scanLine(g.rowLine(row), g.Cell, g.rules.Granularity, emit)
	}
	for col := 0; col < g.width; col++ {
		scanLine(g.colLine(col), g.Cell, g.rules.Granularity, emit)
	}
	return matches, len(matches) > 0
}
