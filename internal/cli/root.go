package cli

import (
	"fmt"

	browsecmd "ghactivity/internal/cli/browse"
	listcmd "ghactivity/internal/cli/list"
	opencmd "ghactivity/internal/cli/open"
	rendercmd "ghactivity/internal/cli/render"
	watchcmd "ghactivity/internal/cli/watch"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ghactivity",
		Short:   "ghactivity shows recent GitHub activity",
		Long:    `Renders a bundled dataset of recent GitHub issues and pull requests as an HTML page or in the terminal.`,
		Version: fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
		Args:    cobra.NoArgs,
		// Without a subcommand the interactive browser is started.
		Run: browsecmd.New().Run,
	}

	rootCmd.AddCommand(
		rendercmd.New(),
		listcmd.New(),
		watchcmd.New(),
		browsecmd.New(),
		opencmd.New(),
	)

	rootCmd.PersistentFlags().String("config", "", "config path")
	rootCmd.PersistentFlags().StringP("dataset", "d", "", "path of the activity dataset")
	rootCmd.PersistentFlags().String("now", "", "reference time for relative labels, RFC 3339")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("sort", "", "activity order, values - (none, created)")

	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}
