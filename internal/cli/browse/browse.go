package browse

import (
	"ghactivity/internal/cli/paramutils"
	"ghactivity/internal/cli/utils"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/errcodes"
	"ghactivity/internal/tui"

	"github.com/spf13/cobra"
)

type presenter interface {
	Start() error
}

var newPresenter = func(activities []*activity.Entity, o tui.Options) presenter {
	return tui.NewTui(activities, o)
}

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	settings, err := paramutils.LoadSettings(flags)
	if err != nil {
		return err
	}

	activities, err := paramutils.LoadActivities(settings)
	if err != nil {
		return err
	}

	return execute(activities, settings)
}

func execute(activities activity.List, settings *paramutils.Settings) error {
	if len(activities) == 0 {
		return errcodes.ErrNoActivities
	}

	p := newPresenter(activities, tui.Options{
		Reference: settings.ReferenceOrNow,
		Refresh:   settings.Config.WatchInterval,
		Open:      utils.OpenInBrowser,
		Title:     settings.Config.Title,
	})

	return p.Start()
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b", "tui"},
		Short:   "Browse activities",
		Long:    `Shows the activity dataset in an interactive table. Enter opens the selected activity, / filters, q quits`,
		Args:    cobra.NoArgs,
		Run:     utils.RunCommandWrapper(runCmd),
	}

	return cmd
}
