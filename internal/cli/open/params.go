package open

import (
	"ghactivity/internal/cli/paramutils"

	"github.com/spf13/cobra"
)

type cmdParams struct {
	PrintOnly bool
}

type cmdArgs struct {
	ID string
}

func parseArgs(args []string) *cmdArgs {
	return &cmdArgs{ID: paramutils.ParseIDArg(args)}
}

func fillFlagOpenCmdParams(cmd *cobra.Command, params *cmdParams) {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	params.PrintOnly = flags.GetBoolOrDefault("print", false)
}
