package list

import (
	"fmt"
	"io"
	"time"

	"ghactivity/internal/cli/paramutils"
	"ghactivity/internal/cli/utils"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/render"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

const maxTitleWidth = 60

// NewTable lays out activities as terminal rows. It is shared with watch,
// which redraws the same table in place.
func NewTable(activities activity.List, reference time.Time) (*uitable.Table, error) {
	table := uitable.New()
	table.MaxColWidth = maxTitleWidth
	table.AddRow("STATE", "#", "REPOSITORY", "TITLE", "CREATED")
	table.AddRow("-----", "-", "----------", "-----", "-------")

	for _, a := range activities {
		item, err := render.Item(a, reference, 0)
		if err != nil {
			return nil, err
		}

		table.AddRow(
			item.Badge.Label,
			item.Number,
			fmt.Sprintf("%s/%s", item.OwnerLogin, item.Repository),
			item.Title,
			item.RelativeTime,
		)
	}

	return table, nil
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

	return execute(cmd.OutOrStdout(), activities, settings.ReferenceOrNow())
}

func execute(w io.Writer, activities activity.List, reference time.Time) error {
	table, err := NewTable(activities, reference)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, table.String())
	return err
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List activities",
		Long:    `Lists the issues and pull requests of the activity dataset`,
		Args:    cobra.NoArgs,
		Run:     utils.RunCommandWrapper(runCmd),
	}

	return cmd
}
