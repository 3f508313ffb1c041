package greet

import (
	"fmt"
	"log/slog"

	"github.com/flarebyte/salute/internal/batch"
	"github.com/flarebyte/salute/internal/config"
	"github.com/flarebyte/salute/internal/greeter"
	"github.com/spf13/cobra"
)

var (
	flagGreeting string
	flagPhrase   string
	flagConfig   string
	flagRoster   string
	flagLua      string
	flagWorkers  int
)

// Cmd represents the `salute greet` command.
var Cmd = &cobra.Command{
	Use:           "greet [names...]",
	Short:         "Print a greeting for each name",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		if flagConfig != "" {
			c, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = &c
			slog.Debug("config loaded", "path", flagConfig, "phrases", len(c.Phrases))
		}
		g, err := resolveGreeter(cfg)
		if err != nil {
			return err
		}
		names, err := collectNames(cfg, args)
		if err != nil {
			return err
		}
		h, err := loadHook(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(names) == 1 && h == nil {
			return g.GreetTo(out, names[0])
		}

		workers := batch.Workers(flagWorkers)
		slog.Debug("batch greet", "names", len(names), "workers", workers)
		results := batch.Run(g, names, workers)

		// Print all successes first, then report failed records on stderr.
		var failures []batch.Result
		for _, r := range results {
			if r.Err != nil {
				failures = append(failures, r)
				continue
			}
			line := r.Line
			if h != nil {
				line, err = h.Apply(line)
				if err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return &greeter.WriteError{Err: err}
			}
		}
		for _, r := range failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "greet %q: %v\n", r.Name, r.Err)
		}
		if len(failures) > 0 {
			return fmt.Errorf("failed to greet %d of %d names", len(failures), len(results))
		}
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagGreeting, "greeting", "g", "", "Greeting phrase override")
	Cmd.Flags().StringVarP(&flagPhrase, "phrase", "p", "", "Named phrase key from the config catalog")
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVarP(&flagRoster, "roster", "r", "", "Path to a YAML roster of names")
	Cmd.Flags().StringVar(&flagLua, "lua", "", "Path to a Lua line hook script")
	Cmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "Worker count for batch greeting (0 = CPU count)")
}
