package board

// CanMove reports whether swapping a and b is a legal move.
//
// The swap is legal when both positions hold tiles, the tiles differ, the
// positions satisfy the grid's Adjacency rule, and swapping them would form
// a run touching a or b. The check evaluates the would-be tiles directly and
// never writes to the grid.
func (g *Grid[T]) CanMove(a, b Position) bool {
	va, okA := g.Piece(a)
	vb, okB := g.Piece(b)
	if !okA || !okB || va == vb {
		return false
	}
	if !g.swappable(a, b) {
		return false
	}

	swapped := func(p Position) Cell[T] {
		switch p {
		case a:
			return Filled(vb)
		case b:
			return Filled(va)
		}
		return g.Cell(p)
	}

	touches := false
	emit := func(m Match[T]) {
		for _, p := range m.Positions {
			if p == a || p == b {
				touches = true
				return
			}
		}
	}
	for _, l := range []line{g.rowLine(a.Row), g.colLine(a.Col), g.rowLine(b.Row), g.colLine(b.Col)} {
		scanLine(l, swapped, MaximalRuns, emit)
		if touches {
			return true
		}
	}
	return false
}

// swappable applies the Adjacency rule to a pair of distinct positions.
func (g *Grid[T]) swappable(a, b Position) bool {
	switch g.rules.Adjacency {
	case SameLine:
		return a != b && (a.Row == b.Row || a.Col == b.Col)
	default:
		return a.Manhattan(b) == 1
	}
}

// Hint returns the first legal move in row-major order, preferring the
// partner to the right over the one below.
func (g *Grid[T]) Hint() (Position, Position, bool) {
	for p := range g.Positions() {
		for _, q := range g.partners(p) {
			if g.CanMove(p, q) {
				return p, q, true
			}
		}
	}
	return Position{}, Position{}, false
}

// HasMoves reports whether any legal move exists.
func (g *Grid[T]) HasMoves() bool {
	_, _, ok := g.Hint()
	return ok
}

// partners lists candidate swap targets to the right of and below p.
func (g *Grid[T]) partners(p Position) []Position {
	reach := 1
	if g.rules.Adjacency == SameLine {
		reach = max(g.width, g.height)
	}
	var out []Position
	for d := 1; d <= reach && p.Col+d < g.width; d++ {
		out = append(out, P(p.Row, p.Col+d))
	}
	for d := 1; d <= reach && p.Row+d < g.height; d++ {
		out = append(out, P(p.Row+d, p.Col))
	}
	return out
}
