package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"ghactivity/internal/badge"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/errcodes"
	"ghactivity/internal/systemcodes"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type PromptActivity struct {
	Activity *activity.Entity
	Title    string
}

func getPromptActivitySlice(l activity.List, describe func(*activity.Entity) string) []*PromptActivity {
	options := make([]*PromptActivity, 0, len(l))
	for _, a := range l {
		options = append(options, &PromptActivity{
			Activity: a,
			Title: fmt.Sprintf(
				"%s#%d: %s (%s)",
				a.Repository.FullName(),
				a.Number,
				a.Title,
				describe(a),
			),
		})
	}

	return options
}

var askOne = survey.AskOne

// PromptActivitySelect asks the user to pick one activity. describe adds a
// short suffix to every option, typically the badge label and relative time.
func PromptActivitySelect(l activity.List, describe func(*activity.Entity) string) (*activity.Entity, error) {
	if len(l) == 0 {
		return nil, errcodes.ErrNoActivities
	}

	items := getPromptActivitySlice(l, describe)

	var answer string
	options := make([]string, 0, len(items))
	for _, v := range items {
		options = append(options, v.Title)
	}
	prompt := &survey.Select{
		Message:  "Open activity page",
		Options:  options,
		PageSize: 10,
	}
	err := askOne(prompt, &answer)
	if err != nil {
		return nil, err
	}

	for _, v := range items {
		if v.Title == answer {
			return v.Activity, nil
		}
	}

	return nil, errcodes.ErrActivityNotFound
}

var OpenInBrowser = func(url string) error {
	var err error

	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform")
	}

	return err
}

func ExitCode(err error) int {
	switch {
	case errors.Is(err, badge.ErrClassification):
		return systemcodes.ErrorCodeClassification
	default:
		return systemcodes.ErrorCodeGeneric
	}
}

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

var exit = os.Exit

func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			exit(ExitCode(err))
		}
	}
}
