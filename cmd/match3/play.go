package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var (
	flagLevel     string
	flagLevelsDir string
)

var playCmd = &cobra.Command{
	Use:   "play [classic|endless]",
	Short: "Play a game mode",
	Long: `Start playing match3 in the given mode (classic by default).

Classic games end when the turn limit is reached or no move is left.
Endless games have no turn limit and reshuffle a stuck board.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select a gem, then a neighbour to swap
  Esc          - Drop the selection
  H            - Show a hint
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  match3 play
  match3 play endless
  match3 play --difficulty easy
  match3 play --level garden
  match3 play --level my_board --levels ./boards`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"classic", "endless"},
	RunE:      runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start from a board by ID (classic only)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of board YAML files (default: built-in boards)")
}

// modeID maps a mode argument to a registered game ID.
func modeID(args []string) (string, error) {
	if len(args) == 0 {
		return match3.IDClassic, nil
	}
	switch match3.Mode(args[0]) {
	case match3.ModeClassic:
		return match3.IDClassic, nil
	case match3.ModeEndless:
		return match3.IDEndless, nil
	}
	if registry.Exists(args[0]) {
		return args[0], nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'match3 list')", args[0])
}

// levelLoader returns the loader for --levels, or the built-in boards.
func levelLoader() *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewLoader(flagLevelsDir)
	}
	return levels.Builtin()
}

// loadLevel loads the board named by --level. An unknown ID reports the
// IDs the loader does have.
func loadLevel() (levels.Level, error) {
	loader := levelLoader()
	lvl, err := loader.LoadByID(flagLevel)
	if err == nil || !errors.Is(err, levels.ErrNotFound) {
		return lvl, err
	}
	ids, listErr := loader.ListIDs()
	if listErr != nil || len(ids) == 0 {
		return lvl, err
	}
	return lvl, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := modeID(args)
	if err != nil {
		return err
	}

	if flagLevel != "" {
		if gameID != match3.IDClassic {
			return fmt.Errorf("--level only applies to classic mode")
		}
		lvl, loadErr := loadLevel()
		if loadErr != nil {
			return loadErr
		}
		logger.Debug("starting from board", "id", lvl.ID, "size", fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height()))
		match3.SetStartLevel(&lvl)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	state, err := tui.Run(game, store, runtimeConfig(), playerName(), tuiLogger())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game finished", "mode", gameID, "score", state.Score, "moves", state.Moves)
	return nil
}
