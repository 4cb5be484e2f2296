package utils

import (
	"bytes"
	"testing"

	"ghactivity/internal/badge"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/errcodes"
	"ghactivity/internal/systemcodes"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testList() activity.List {
	repo := activity.RepositoryDescriptor{Owner: activity.Owner{Login: "octocat"}, Name: "hello-world"}
	return activity.List{
		activity.NewIssue(activity.Entity{Number: 1, Title: "First", Repository: repo}, activity.IssueStateOpen, ""),
		activity.NewIssue(activity.Entity{Number: 2, Title: "Second", Repository: repo}, activity.IssueStateOpen, ""),
	}
}

func describe(*activity.Entity) string { return "Open" }

func TestPromptActivitySelect(t *testing.T) {
	oldAskOne := askOne

	t.Run("returns the chosen activity", func(t *testing.T) {
		var options []string
		askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
			options = p.(*survey.Select).Options
			*(response.(*string)) = options[1]
			return nil
		}

		a, err := PromptActivitySelect(testList(), describe)
		require.NoError(t, err)
		assert.Equal(t, int64(2), a.Number)
		assert.Equal(t, "octocat/hello-world#1: First (Open)", options[0])
	})

	t.Run("returns prompt errors", func(t *testing.T) {
		vErr := errors.New("interrupt")
		askOne = func(survey.Prompt, interface{}, ...survey.AskOpt) error { return vErr }

		_, err := PromptActivitySelect(testList(), describe)
		assert.EqualError(t, err, vErr.Error())
	})

	t.Run("fails without activities", func(t *testing.T) {
		_, err := PromptActivitySelect(nil, describe)
		assert.ErrorIs(t, err, errcodes.ErrNoActivities)
	})

	askOne = oldAskOne
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, systemcodes.ErrorCodeGeneric, ExitCode(errors.New("x")))
	assert.Equal(t, systemcodes.ErrorCodeClassification, ExitCode(&badge.ClassificationError{Kind: "Discussion"}))
}

func TestRunCommandWrapper(t *testing.T) {
	oldExit := exit
	code := -1
	exit = func(c int) { code = c }

	t.Run("prints the error and exits", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetErr(&buf)

		RunCommandWrapper(func(*cobra.Command, []string) error {
			return errcodes.ErrMissingDataset
		})(cmd, nil)

		assert.Equal(t, systemcodes.ErrorCodeGeneric, code)
		assert.Contains(t, buf.String(), "dataset is missing")
	})

	t.Run("does nothing on success", func(t *testing.T) {
		code = -1
		RunCommandWrapper(func(*cobra.Command, []string) error { return nil })(&cobra.Command{}, nil)
		assert.Equal(t, -1, code)
	})

	exit = oldExit
}
