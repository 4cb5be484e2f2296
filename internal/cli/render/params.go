package render

import (
	"ghactivity/internal/cli/paramutils"

	"github.com/spf13/cobra"
)

type cmdParams struct {
	Output string
	// Strict fails the command instead of rendering the unknown badge.
	Strict bool
}

func fillFlagCmdParams(cmd *cobra.Command, params *cmdParams) {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	params.Output = flags.GetStringOrDefault("output", "")
	params.Strict = flags.GetBoolOrDefault("strict", false)
}
