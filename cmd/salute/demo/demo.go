package demo

import (
	"fmt"

	"github.com/flarebyte/salute/internal/batch"
	"github.com/flarebyte/salute/internal/greeter"
	"github.com/spf13/cobra"
)

// Cmd reproduces the classic walkthrough: a plain hello, the default and a
// custom greeter, a small batch, and a deliberate validation failure that is
// shown rather than treated as fatal.
var Cmd = &cobra.Command{
	Use:           "demo",
	Short:         "Run the annotated greeting walkthrough",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Hello, World!")

		g := greeter.Default()
		if err := g.GreetTo(out, "World"); err != nil {
			return err
		}

		custom, err := greeter.New("Greetings")
		if err != nil {
			return err
		}
		if err := custom.GreetTo(out, "Developer"); err != nil {
			return err
		}

		for _, r := range batch.Run(g, []string{"Alice", "Bob", "Charlie"}, 0) {
			if r.Err != nil {
				return r.Err
			}
			fmt.Fprintln(out, r.Line)
		}

		// The error path is part of the demonstration: show it, keep going.
		if _, err := g.Greet(""); err != nil {
			fmt.Fprintf(out, "expected error: %v\n", err)
		}
		return nil
	},
}
