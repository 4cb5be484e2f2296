package open

import (
	"fmt"
	"io"
	"time"

	"ghactivity/internal/badge"
	"ghactivity/internal/cli/paramutils"
	"ghactivity/internal/cli/utils"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/relativetime"
	"ghactivity/internal/render"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var promptActivitySelect = utils.PromptActivitySelect

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	settings, err := paramutils.LoadSettings(flags)
	if err != nil {
		return err
	}

	params := &cmdParams{}
	fillFlagOpenCmdParams(cmd, params)

	activities, err := paramutils.LoadActivities(settings)
	if err != nil {
		return err
	}

	return execute(cmd.OutOrStdout(), activities, parseArgs(args), params, settings.ReferenceOrNow())
}

func execute(
	w io.Writer,
	activities activity.List,
	args *cmdArgs,
	params *cmdParams,
	reference time.Time,
) error {
	var (
		a   *activity.Entity
		err error
	)
	if args.ID != "" {
		a, err = paramutils.FindActivity(activities, args.ID)
	} else {
		a, err = promptActivitySelect(activities, func(a *activity.Entity) string {
			return describe(a, reference)
		})
	}
	if err != nil {
		return err
	}

	if params.PrintOnly {
		_, err = fmt.Fprintln(w, a.URL)
		return err
	}

	return utils.OpenInBrowser(a.URL)
}

// describe labels a prompt option with its badge and relative time.
func describe(a *activity.Entity, reference time.Time) string {
	label := badge.Unknown.Label
	b, err := render.Classify(a)
	if err != nil {
		log.Warn().Err(err).Str("url", a.URL).Msg("could not classify activity")
	} else {
		label = b.Label
	}

	if a.Created.IsZero() {
		return label
	}

	return fmt.Sprintf("%s, %s", label, relativetime.Format(a.Created, reference))
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [NUMBER | OWNER/REPO#NUMBER]",
		Aliases: []string{"o", "op"},
		Args:    cobra.MaximumNArgs(1),
		Short:   "Open an activity",
		Long:    `Opens an issue or pull request of the dataset in the browser, prompting for one when no number is given`,
		Run:     utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().Bool("print", false, "print the activity URL")

	return cmd
}
