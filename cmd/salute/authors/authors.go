package authors

import (
	"errors"
	"log/slog"

	"github.com/flarebyte/salute/internal/config"
	"github.com/flarebyte/salute/internal/gitcrew"
	"github.com/flarebyte/salute/internal/greeter"
	"github.com/spf13/cobra"
)

var (
	flagGreeting string
	flagConfig   string
)

// Cmd represents the `salute authors` command: one greeting line per
// distinct commit author of the repository.
var Cmd = &cobra.Command{
	Use:           "authors [path]",
	Short:         "Greet the commit authors of a repository",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		g, err := pickGreeter()
		if err != nil {
			return err
		}
		names, err := gitcrew.Authors(path)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return errors.New("no commit authors found")
		}
		slog.Debug("greeting authors", "path", path, "count", len(names))
		out := cmd.OutOrStdout()
		for _, name := range names {
			if err := g.GreetTo(out, name); err != nil {
				return err
			}
		}
		return nil
	},
}

func pickGreeter() (greeter.Greeter, error) {
	if flagGreeting != "" {
		return greeter.New(flagGreeting)
	}
	if flagConfig != "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return greeter.Greeter{}, err
		}
		if cfg.HasGreeting {
			return greeter.New(cfg.Greeting)
		}
	}
	return greeter.Default(), nil
}

func init() {
	Cmd.Flags().StringVarP(&flagGreeting, "greeting", "g", "", "Greeting phrase override")
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue)")
}
