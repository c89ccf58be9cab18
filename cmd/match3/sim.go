package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/tiles"
)

var (
	flagSimMoves []string
	flagSimHint  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Apply moves to a board without a terminal UI",
	Long: `Build a board from a level file or a random seed, apply the given
swaps and print the board and every effect after each one.

A move is written row,col:row,col with zero-based coordinates.
Illegal moves are reported and leave the board unchanged.

Examples:
  match3 sim --level cascade --move 0,1:1,1
  match3 sim --seed 42 --move 3,3:3,4 --move 5,0:6,0
  match3 sim --seed 7 --hint
  match3 sim --level chain --move 0,2:0,3 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	f := simCmd.Flags()
	f.StringVar(&flagLevel, "level", "", "Board ID to load (default: random board)")
	f.StringVar(&flagLevelsDir, "levels", "", "Directory of board YAML files (default: built-in boards)")
	f.StringArrayVar(&flagSimMoves, "move", nil, "Swap to apply, as r,c:r,c (repeatable)")
	f.BoolVar(&flagSimHint, "hint", false, "Print a legal move for the final board")
}

// simMove is one requested swap.
type simMove struct {
	From, To board.Position
}

// parseMove parses "r,c:r,c".
func parseMove(s string) (simMove, error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok {
		return simMove{}, fmt.Errorf("move %q: want r,c:r,c", s)
	}
	from, err := parsePos(left)
	if err != nil {
		return simMove{}, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := parsePos(right)
	if err != nil {
		return simMove{}, fmt.Errorf("move %q: %w", s, err)
	}
	return simMove{From: from, To: to}, nil
}

func parsePos(s string) (board.Position, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return board.Position{}, fmt.Errorf("position %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: bad row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return board.Position{}, fmt.Errorf("position %q: bad column", s)
	}
	return board.P(row, col), nil
}

func runSim(cmd *cobra.Command, _ []string) error {
	moves := make([]simMove, 0, len(flagSimMoves))
	for _, s := range flagSimMoves {
		m, err := parseMove(s)
		if err != nil {
			return err
		}
		moves = append(moves, m)
	}

	grid, label, err := simGrid()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, %dx%d, rules %s/%s\n\n", label, grid.Width(), grid.Height(),
		grid.Rules().Adjacency, grid.Rules().Granularity)

	total := simulate(out, grid, moves, gameCfg.Scoring)
	fmt.Fprintf(out, "\nTotal: %d points\n", total)

	if flagSimHint {
		if a, b, ok := grid.Hint(); ok {
			fmt.Fprintf(out, "Hint: %d,%d:%d,%d\n", a.Row, a.Col, b.Row, b.Col)
		} else {
			fmt.Fprintln(out, "Hint: no legal move")
		}
	}
	return nil
}

// simGrid builds the starting board from --level or the seed.
func simGrid() (*board.Grid[tiles.Gem], string, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fallback := tiles.NewRandom(seed, gameCfg.Board.Kinds)
	rules, err := gameCfg.EngineRules()
	if err != nil {
		return nil, "", err
	}

	if flagLevel != "" {
		lvl, err := loadLevel()
		if err != nil {
			return nil, "", err
		}
		lvl.CapPasses(rules.MaxPasses)
		grid, err := lvl.NewGrid(fallback)
		if err != nil {
			return nil, "", err
		}
		return grid, fmt.Sprintf("Board %s (%s)", lvl.ID, lvl.Name), nil
	}

	if gameCfg.Board.Width <= 0 || gameCfg.Board.Height <= 0 {
		return nil, "", errors.New("board size must be positive")
	}
	grid := board.NewWithRules[tiles.Gem](fallback, gameCfg.Board.Width, gameCfg.Board.Height, rules)
	return grid, fmt.Sprintf("Random board (seed %d)", seed), nil
}

// simulate applies moves in order, printing each outcome, and returns
// the total points scored.
func simulate(w io.Writer, grid *board.Grid[tiles.Gem], moves []simMove, sc config.ScoringConfig) int {
	fmt.Fprintln(w, match3.BoardString(grid))

	total := 0
	for i, m := range moves {
		fmt.Fprintf(w, "\nMove %d: %v <-> %v\n", i+1, m.From, m.To)
		if !grid.CanMove(m.From, m.To) {
			fmt.Fprintln(w, "  not a legal move")
			logger.Debug("illegal move", "from", m.From, "to", m.To)
			continue
		}

		effects := grid.Move(m.From, m.To)
		for _, e := range effects {
			fmt.Fprintf(w, "  %s\n", formatEffect(e))
			logger.Debug("effect", "move", i+1, "kind", e.Kind, "len", e.Match.Len())
		}

		res := match3.Tally(effects, sc)
		total += res.Points
		fmt.Fprintf(w, "  +%d points, %d matches, %d passes\n", res.Points, res.Matches, res.Passes)
		fmt.Fprintln(w, match3.BoardString(grid))
	}
	return total
}

func formatEffect(e board.Effect[tiles.Gem]) string {
	if e.Kind != board.EffectMatch {
		return e.Kind.String()
	}
	pos := make([]string, len(e.Match.Positions))
	for i, p := range e.Match.Positions {
		pos[i] = p.String()
	}
	dir := "vertical"
	if e.Match.Horizontal() {
		dir = "horizontal"
	}
	return fmt.Sprintf("Match %s x%d %s %s", e.Match.Matched, e.Match.Len(), dir, strings.Join(pos, " "))
}
