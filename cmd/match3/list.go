package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and boards",
	Long: `Shows the registered game modes and the boards that can be passed
to 'play --level' and 'sim --level'. Use --levels to list a directory
of board files instead of the built-in ones.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of board YAML files (default: built-in boards)")
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	games := registry.List()
	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Game modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	all, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Boards:")
	fmt.Fprintln(out)
	if len(all) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, lvl := range all {
		turns := "-"
		if lvl.Turns > 0 {
			turns = fmt.Sprint(lvl.Turns)
		}
		fmt.Fprintf(out, "  %-12s %-20s %dx%d  rules %s/%s  turns %s\n",
			lvl.ID, lvl.Name, lvl.Width(), lvl.Height(),
			lvl.Rules.Adjacency, lvl.Rules.Granularity, turns)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'match3 play [mode]' to play.")
	return nil
}
