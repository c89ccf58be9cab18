package board

// Move swaps a and b and resolves the cascade until the grid is stable.
//
// Each pass detects all matches, emits one Match effect per match in
// detection order, clears the matched cells, lets tiles fall, refills the
// gaps from the generator and emits one Refill effect. The loop stops at the
// first pass with no matches, or after Rules.MaxPasses passes when set.
//
// An illegal move leaves the grid untouched and returns no effects.
func (g *Grid[T]) Move(a, b Position) []Effect[T] {
	if !g.CanMove(a, b) {
		return nil
	}
	g.swap(a, b)

	var effects []Effect[T]
	for pass := 0; g.rules.MaxPasses <= 0 || pass < g.rules.MaxPasses; pass++ {
		matches, found := g.FindMatches()
		if !found {
			break
		}
		for _, m := range matches {
			e := MatchEffect(m)
			effects = append(effects, e)
			g.notify(e)
		}
		g.clear(matches)
		g.collapse()
		g.refill()

		e := RefillEffect[T]()
		effects = append(effects, e)
		g.notify(e)
	}
	return effects
}

// clear empties every position referenced by any match.
// Positions shared by two matches are simply cleared twice.
func (g *Grid[T]) clear(matches []Match[T]) {
	for _, m := range matches {
		for _, p := range m.Positions {
			g.set(p, Empty[T]())
		}
	}
}

// collapse applies gravity column by column: surviving tiles keep their
// relative order and settle at the bottom, leaving the gaps on top.
func (g *Grid[T]) collapse() {
	for col := 0; col < g.width; col++ {
		write := g.height - 1
		for row := g.height - 1; row >= 0; row-- {
			c := g.cells[row*g.width+col]
			if c.IsEmpty() {
				continue
			}
			if row != write {
				g.cells[write*g.width+col] = c
				g.cells[row*g.width+col] = Empty[T]()
			}
			write--
		}
	}
}

// refill fills remaining empty cells from the generator,
// columns left to right, rows top to bottom.
func (g *Grid[T]) refill() {
	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			i := row*g.width + col
			if g.cells[i].IsEmpty() {
				g.cells[i] = Filled(g.gen.Next())
			}
		}
	}
}

// CountPasses returns the number of cascade passes recorded in effects.
func CountPasses[T comparable](effects []Effect[T]) int {
	n := 0
	for _, e := range effects {
		if e.Kind == EffectRefill {
			n++
		}
	}
	return n
}
