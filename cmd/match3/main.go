// match3 is a terminal match-three game built on a generic board engine.
//
// Usage:
//
//	match3 list              - List game modes and built-in boards
//	match3 play [mode]       - Play classic (default) or endless
//	match3 menu              - Pick a mode interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores [mode]     - Show high scores
//	match3 sim               - Apply moves to a board headlessly
//	match3 config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.match3/scores.db)
//	--config <path>       - Use a custom match3.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

var (
	logger    *log.Logger
	gameCfg   config.Match3Config
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match three gems in your terminal",
	Long: `match3 is a terminal match-three game.

Swap two neighbouring gems to line up three or more of a kind.
Matched gems are cleared, the gems above fall down and new ones
drop in from the top, which can set off further matches.

Available commands:
  list     - Show game modes and built-in boards
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run moves on a board without a terminal UI
  config   - Print the default configuration

Examples:
  match3 play
  match3 play endless --difficulty hard
  match3 play --level cascade
  match3 sim --level cascade --move 1,0:0,0
  match3 serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and the game configuration shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		out, logCloser = f, f
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	})

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	gameCfg, err = config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyMatch3Preset(&gameCfg, preset)
	}
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d", gameCfg.Board.Width, gameCfg.Board.Height),
		"kinds", gameCfg.Board.Kinds,
		"rules", gameCfg.Rules.Adjacency+"/"+gameCfg.Rules.Granularity,
		"difficulty", preset,
	)
	match3.SetConfig(gameCfg)
	return nil
}

// tuiLogger returns the logger for full-screen programs. Logging to the
// terminal would draw over the game, so it is discarded unless --log-file is set.
func tuiLogger() *log.Logger {
	if flagLogFile == "" {
		return nil
	}
	return logger
}
