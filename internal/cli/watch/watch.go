package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ghactivity/internal/cli/list"
	"ghactivity/internal/cli/paramutils"
	"ghactivity/internal/cli/utils"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/errcodes"

	"github.com/gosuri/uilive"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type cmdParams struct {
	Interval time.Duration
}

func fillCmdParams(cmd *cobra.Command, settings *paramutils.Settings, params *cmdParams) error {
	params.Interval = settings.Config.WatchInterval

	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	if s := flags.GetStringOrDefault("interval", ""); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return errcodes.ErrInvalidInterval
		}
		params.Interval = d
	}

	if params.Interval <= 0 {
		return errcodes.ErrInvalidInterval
	}

	return nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	settings, err := paramutils.LoadSettings(flags)
	if err != nil {
		return err
	}

	params := &cmdParams{}
	err = fillCmdParams(cmd, settings, params)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, cmd.OutOrStdout(), func() (activity.List, error) {
		return paramutils.LoadActivities(settings)
	}, settings.ReferenceOrNow, params.Interval)
}

// execute redraws the table on every tick until ctx is done. The dataset is
// reloaded each time; a failed reload keeps the previous activities.
func execute(
	ctx context.Context,
	w io.Writer,
	load func() (activity.List, error),
	reference func() time.Time,
	interval time.Duration,
) error {
	activities, err := load()
	if err != nil {
		return err
	}

	writer := uilive.New()
	writer.Out = w

	draw := func() error {
		table, err := list.NewTable(activities, reference())
		if err != nil {
			return err
		}
		fmt.Fprintln(writer, table.String())
		return writer.Flush()
	}

	err = draw()
	if err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			next, err := load()
			if err != nil {
				log.Warn().Err(err).Msg("reload failed, keeping previous activities")
			} else {
				activities = next
			}

			err = draw()
			if err != nil {
				return err
			}
		}
	}
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the activity list up to date",
		Long:  `Lists activities and redraws the list in place, refreshing relative times and reloading the dataset on every interval`,
		Args:  cobra.NoArgs,
		Run:   utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().String("interval", "", "refresh interval, e.g. 30s (default from config, 1m)")

	return cmd
}
