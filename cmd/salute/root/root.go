package root

import (
	"log/slog"
	"os"

	"github.com/flarebyte/salute/cmd/salute/authors"
	"github.com/flarebyte/salute/cmd/salute/demo"
	"github.com/flarebyte/salute/cmd/salute/greet"
	"github.com/flarebyte/salute/cmd/salute/list"
	"github.com/flarebyte/salute/cmd/salute/version"
	"github.com/flarebyte/salute/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel  string
	flagLogFormat string
)

// NewRootCmd creates the root command for salute.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salute",
		Short: "CLI: a small greeting toolkit with validated phrases and pluggable output",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logging.New(flagLogLevel, flagLogFormat, os.Stderr))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(greet.Cmd)
	cmd.AddCommand(demo.Cmd)
	cmd.AddCommand(list.Cmd)
	cmd.AddCommand(authors.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
