package board

import (
	"errors"
	"fmt"
	"iter"
)

// Grid is a width × height board of cells stored in row-major order:
// index = row*width + col.
type Grid[T comparable] struct {
	width     int
	height    int
	cells     []Cell[T]
	gen       Generator[T]
	rules     Rules
	listeners []Listener[T]
}

// New creates a grid filled row-major from gen, with default rules.
// Accidental initial matches are left in place.
func New[T comparable](gen Generator[T], width, height int) *Grid[T] {
	return NewWithRules(gen, width, height, DefaultRules())
}

// NewWithRules creates a filled grid using the given rules.
// Negative dimensions are treated as zero.
func NewWithRules[T comparable](gen Generator[T], width, height int, rules Rules) *Grid[T] {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]Cell[T], width*height),
		gen:    gen,
		rules:  rules,
	}
	for i := range g.cells {
		g.cells[i] = Filled(gen.Next())
	}
	return g
}

// FromRows builds a grid from explicit rows, top row first.
// gen is only used for refills.
func FromRows[T comparable](gen Generator[T], rows [][]T, rules Rules) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("board: rows must be non-empty")
	}
	width := len(rows[0])
	g := &Grid[T]{
		width:  width,
		height: len(rows),
		cells:  make([]Cell[T], 0, width*len(rows)),
		gen:    gen,
		rules:  rules,
	}
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("board: row %d has %d tiles, want %d", r, len(row), width)
		}
		for _, v := range row {
			g.cells = append(g.cells, Filled(v))
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Rules returns the rules the grid was created with.
func (g *Grid[T]) Rules() Rules {
	return g.rules
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

func (g *Grid[T]) index(p Position) int {
	return p.Row*g.width + p.Col
}

// Positions yields every valid position in row-major order.
// The sequence is lazy and can be ranged over any number of times.
func (g *Grid[T]) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := 0; row < g.height; row++ {
			for col := 0; col < g.width; col++ {
				if !yield(P(row, col)) {
					return
				}
			}
		}
	}
}

// Piece returns the tile at p. It returns false when p is out of range
// or the cell is empty.
func (g *Grid[T]) Piece(p Position) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)].Value()
}

// Cell returns the cell at p, or an empty cell if out of range.
func (g *Grid[T]) Cell(p Position) Cell[T] {
	if !g.InBounds(p) {
		return Empty[T]()
	}
	return g.cells[g.index(p)]
}

func (g *Grid[T]) set(p Position, c Cell[T]) {
	g.cells[g.index(p)] = c
}

func (g *Grid[T]) swap(a, b Position) {
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// Rows returns a copy of the tiles, top row first.
// Empty cells come back as the zero value.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for row := range rows {
		rows[row] = make([]T, g.width)
		for col := range rows[row] {
			rows[row][col], _ = g.cells[row*g.width+col].Value()
		}
	}
	return rows
}

// Clone returns a deep copy of the cells. The copy shares the generator
// and rules but has no listeners.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]Cell[T], len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  cells,
		gen:    g.gen,
		rules:  g.rules,
	}
}

// Equal reports whether two grids have the same dimensions and cells.
// Two nil grids are equal; a nil grid never equals a non-nil one.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
