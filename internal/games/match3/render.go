package match3

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
)

const (
	cellWidth = 3 // Gem letter with a marker on each side
	hudHeight = 3
)

// layoutSize returns the smallest screen that fits a board of w×h gems.
func layoutSize(w, h int) (int, int) {
	return max(w*cellWidth+2, 34), h + 2 + hudHeight + 2
}

// GemColor maps a gem to its screen color.
func GemColor(g tiles.Gem) core.Color {
	switch g {
	case tiles.Ruby:
		return core.ColorRed
	case tiles.Emerald:
		return core.ColorGreen
	case tiles.Sapphire:
		return core.ColorBlue
	case tiles.Topaz:
		return core.ColorYellow
	case tiles.Amethyst:
		return core.ColorMagenta
	case tiles.Pearl:
		return core.ColorWhite
	case tiles.Onyx:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.grid.Width()*cellWidth + 2
	boardH := g.grid.Height() + 2
	box := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	hudW, _ := layoutSize(g.grid.Width(), g.grid.Height())
	g.renderHUD(dst, core.NewRect((g.screenW-hudW)/2, 0, hudW, hudHeight))
	dst.DrawBox(box, core.ColorGray)
	g.renderBoard(dst, box)
	dst.DrawTextCentered(box.Bottom()+1, g.footer(), core.ColorGray)
	g.renderOverlays(dst, box)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	w, h := layoutSize(g.grid.Width(), g.grid.Height())
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h), core.ColorDefault)
}

// renderHUD lays the status lines across area, which is at least as wide
// as the board box so narrow boards keep both columns apart.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	dst.DrawTextCentered(0, g.Title(), core.ColorCyan)

	dst.DrawText(area.X+1, 1, fmt.Sprintf("Score: %d", g.score))

	turns := fmt.Sprintf("Moves: %d", g.moves)
	if limit := g.turnLimit(); limit > 0 {
		turns = fmt.Sprintf("Moves: %d/%d", g.moves, limit)
	}
	dst.DrawText(area.Right()-1-len(turns), 1, turns)

	info := fmt.Sprintf("Gems: %d", g.gen.Kinds())
	if g.level != nil {
		info = "Board: " + g.level.Name
	}
	dst.DrawText(area.X+1, 2, info)

	if g.lastGain > 0 {
		gain := fmt.Sprintf("+%d", g.lastGain)
		dst.DrawTextColor(area.Right()-1-len(gain), 2, gain, core.ColorYellow)
	}
}

// renderBoard draws gems with the cursor as [X], the selection as <X>
// and hint tiles in bold.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	hinting := g.hintTicks > 0
	for p := range g.grid.Positions() {
		x := box.X + 1 + p.Col*cellWidth
		y := box.Y + 1 + p.Row

		gem, ok := g.grid.Piece(p)
		if !ok {
			continue
		}
		cell := core.Cell{Rune: gem.Char(), Color: GemColor(gem)}
		if slices.Contains(g.flash, p) {
			cell.Color = core.ColorOrange
			cell.Bold = true
		}
		if hinting && (p == g.hintFrom || p == g.hintTo) {
			cell.Bold = true
			dst.SetColor(x, y, '·', core.ColorCyan)
			dst.SetColor(x+2, y, '·', core.ColorCyan)
		}
		dst.SetCell(x+1, y, cell)

		switch {
		case p == g.cursor:
			dst.SetColor(x, y, '[', core.ColorWhite)
			dst.SetColor(x+2, y, ']', core.ColorWhite)
		case g.hasSel && p == g.selected:
			dst.SetColor(x, y, '<', core.ColorYellow)
			dst.SetColor(x+2, y, '>', core.ColorYellow)
		}
	}
	if g.hasSel && g.selected == g.cursor {
		x := box.X + 1 + g.cursor.Col*cellWidth
		y := box.Y + 1 + g.cursor.Row
		dst.SetColor(x, y, '<', core.ColorYellow)
		dst.SetColor(x+2, y, '>', core.ColorYellow)
	}
}

func (g *Game) footer() string {
	if g.bestCascade > 1 {
		return fmt.Sprintf("Best cascade x%d  |  H: hint", g.bestCascade)
	}
	return "Enter: select/swap  |  H: hint"
}

func (g *Game) renderOverlays(dst *core.Screen, box core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, box, "PAUSED", "Press P to resume")
	case g.gameOver:
		drawOverlay(dst, box, "GAME OVER", g.reason, fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	box := area.Centered(maxLen+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		dst.DrawTextColor(box.X+(box.W-len(line))/2, box.Y+1+i, line, core.ColorWhite)
	}
}

// BoardString renders the grid as gem letters, one row per line.
func BoardString(grid *board.Grid[tiles.Gem]) string {
	var out []byte
	for i, row := range grid.Rows() {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, tiles.FormatRow(row)...)
	}
	return string(out)
}
