package render

import (
	"fmt"
	"io"

	"ghactivity/internal/badge"
	"ghactivity/internal/cli/paramutils"
	"ghactivity/internal/cli/utils"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/pkg/fs"
	"ghactivity/internal/render"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	settings, err := paramutils.LoadSettings(flags)
	if err != nil {
		return err
	}

	params := &cmdParams{}
	fillFlagCmdParams(cmd, params)

	activities, err := paramutils.LoadActivities(settings)
	if err != nil {
		return err
	}

	return execute(activities, settings, params, cmd.OutOrStdout(), fs.OS{})
}

func execute(
	activities activity.List,
	settings *paramutils.Settings,
	params *cmdParams,
	stdout io.Writer,
	filesystem fs.Filesystem,
) error {
	if params.Strict {
		err := checkClassifiable(activities)
		if err != nil {
			return err
		}
	}

	page, err := render.Page(activities, render.Options{
		Title:      settings.Config.Title,
		MaxWidth:   settings.Config.MaxWidth,
		AvatarSize: settings.Config.AvatarSize,
		Reference:  settings.ReferenceOrNow(),
	})
	if err != nil {
		return err
	}

	if params.Output == "" {
		return render.Write(stdout, page)
	}

	f, err := filesystem.Create(params.Output)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", params.Output)
	}

	err = render.Write(f, page)
	if err != nil {
		f.Close()
		return err
	}

	log.Info().
		Str("output", params.Output).
		Int("count", len(activities)).
		Msg("page written")

	return f.Close()
}

func checkClassifiable(activities activity.List) error {
	for i, a := range activities {
		_, err := badge.Classify(a)
		if err != nil {
			ref := fmt.Sprintf("activity %d", i)
			if a != nil && a.URL != "" {
				ref = a.URL
			}
			return errors.Wrap(err, ref)
		}
	}

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the activity page",
		Long:  `Renders the activity dataset as a standalone HTML page`,
		Args:  cobra.NoArgs,
		Run:   utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().StringP("output", "o", "", "write the page to a file instead of stdout")
	cmd.Flags().String("title", "", "page title")
	cmd.Flags().Bool("strict", false, "fail on activities whose state cannot be classified")

	return cmd
}
