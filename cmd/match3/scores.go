package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresStats  bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best scores for a mode (classic by default).

Examples:
  match3 scores
  match3 scores endless --limit 20
  match3 scores --player alice
  match3 scores --stats
  match3 scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	f.StringVar(&flagScoresPlayer, "player", "", "Only show this player's scores")
	f.BoolVar(&flagScoresStats, "stats", false, "Show per-mode statistics instead of scores")
	f.BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresStats {
		return printStats(out, store)
	}

	gameID, err := modeID(args)
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(gameID, flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}
	return printScores(out, game.Title(), gameID, scores)
}

func printScores(w io.Writer, title, gameID string, scores []storage.ScoreEntry) error {
	fmt.Fprintf(w, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintf(w, "\nPlay 'match3 play %s' to set the first high score!\n", gameID)
		return nil
	}

	rows := make([][]string, len(scores))
	for i, e := range scores {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Player,
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Moves),
			fmt.Sprintf("x%d", e.Cascades),
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Player", "Score", "Moves", "Cascade", "Date").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func printStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return errors.New("no scores recorded yet")
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Mode", "Games", "Best", "Average", "Moves", "Last played")
	for _, id := range ids {
		st := all[id]
		t.Row(
			id,
			strconv.Itoa(st.GamesCount),
			strconv.Itoa(st.HighScore),
			fmt.Sprintf("%.1f", st.AvgScore),
			strconv.FormatInt(st.TotalMoves, 10),
			st.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	_, err = fmt.Fprintln(w, t.String())
	return err
}
