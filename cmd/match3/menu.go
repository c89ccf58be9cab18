package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start match3 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a mode and Tab for
the scoreboard. After a game ends, press B to return to the menu.

Examples:
  match3 menu
  match3 menu --difficulty hard`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := playerName()

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, player)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		state, err := tui.Run(game, store, cfg, player, tuiLogger())
		if err != nil {
			return err
		}
		logger.Debug("game finished", "mode", res.GameID, "score", state.Score)
	}
}
