// Command juicer groups, joins and reshapes tables stored as CSV or YAML
// files, or kept by name in a local database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "juicer",
		Short:         "Group, join and reshape tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (default ~/.juicer.yaml)")
	root.PersistentFlags().String("store", "", "table database path")
	root.PersistentFlags().String("format", "", "output format, 'text', 'csv' or 'yaml'")
	root.PersistentFlags().Bool("yaml", false, "shorthand for --format yaml")
	root.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	addCommands(root)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fatal("%v", err)
	}
}
