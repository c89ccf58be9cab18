package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in match3.yaml. Save it as
~/.match3/configs/match3.yaml or pass it with --config to customise
the board, rules, scoring and difficulty.

With --effective, prints the configuration after --config and
--difficulty have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagConfigEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}
	data, err := yaml.Marshal(gameCfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
