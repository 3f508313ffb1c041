package list

import (
	"errors"

	"github.com/flarebyte/salute/internal/config"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var flagConfig string

// Cmd represents the `salute list` command.
var Cmd = &cobra.Command{
	Use:           "list",
	Short:         "List the greeting phrases defined in a config",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig == "" {
			return errors.New("missing required flag: --config")
		}
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("Key", "Phrase")
		if cfg.HasGreeting {
			table.Append("(default)", cfg.Greeting)
		}
		for _, key := range cfg.PhraseKeys() {
			phrase, _ := cfg.Phrase(key)
			table.Append(key, phrase)
		}
		table.Render()
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue)")
}
