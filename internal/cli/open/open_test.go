package open

import (
	"bytes"
	"testing"
	"time"

	"ghactivity/internal/cli/utils"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/errcodes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testActivities() activity.List {
	repo := activity.RepositoryDescriptor{Owner: activity.Owner{Login: "octocat"}, Name: "hello-world"}
	return activity.List{
		activity.NewPullRequest(activity.Entity{
			Number: 42, Repository: repo, URL: "https://github.com/octocat/hello-world/pull/42", Created: reference.Add(-48 * time.Hour),
		}, activity.PullRequestStateOpen, true),
		activity.NewIssue(activity.Entity{
			Number: 7, Repository: repo, URL: "https://github.com/octocat/hello-world/issues/7",
		}, activity.IssueStateOpen, ""),
	}
}

func Test_execute(t *testing.T) {
	oldPrompt, oldOpen := promptActivitySelect, utils.OpenInBrowser
	var opened string
	utils.OpenInBrowser = func(url string) error { opened = url; return nil }

	t.Run("prints the url of the given number", func(t *testing.T) {
		var buf bytes.Buffer
		err := execute(&buf, testActivities(), &cmdArgs{ID: "7"}, &cmdParams{PrintOnly: true}, reference)
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/octocat/hello-world/issues/7\n", buf.String())
	})

	t.Run("opens the browser by default", func(t *testing.T) {
		err := execute(&bytes.Buffer{}, testActivities(), &cmdArgs{ID: "octocat/hello-world#42"}, &cmdParams{}, reference)
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/octocat/hello-world/pull/42", opened)
	})

	t.Run("prompts without a number", func(t *testing.T) {
		var described string
		promptActivitySelect = func(l activity.List, describe func(*activity.Entity) string) (*activity.Entity, error) {
			described = describe(l[0])
			return l[0], nil
		}

		var buf bytes.Buffer
		err := execute(&buf, testActivities(), &cmdArgs{}, &cmdParams{PrintOnly: true}, reference)
		require.NoError(t, err)
		assert.Equal(t, "Draft, 2 days ago", described)
		assert.Contains(t, buf.String(), "/pull/42")
	})

	t.Run("fails for unknown numbers", func(t *testing.T) {
		err := execute(&bytes.Buffer{}, testActivities(), &cmdArgs{ID: "99"}, &cmdParams{}, reference)
		assert.ErrorIs(t, err, errcodes.ErrActivityNotFound)
	})

	promptActivitySelect, utils.OpenInBrowser = oldPrompt, oldOpen
}

func Test_describe(t *testing.T) {
	t.Run("uses the badge label and relative time", func(t *testing.T) {
		assert.Equal(t, "Draft, 2 days ago", describe(testActivities()[0], reference))
	})

	t.Run("labels unclassifiable activities as unknown", func(t *testing.T) {
		a := activity.NewIssue(activity.Entity{Number: 8, Created: reference.Add(-time.Hour)}, "PINNED", activity.StateReasonNone)
		assert.Equal(t, "Unknown, 1 hour ago", describe(a, reference))
	})

	t.Run("omits the time without a timestamp", func(t *testing.T) {
		a := &activity.Entity{Kind: "Discussion", Number: 9}
		assert.Equal(t, "Unknown", describe(a, reference))
	})
}

func Test_parseArgs(t *testing.T) {
	assert.Equal(t, "", parseArgs(nil).ID)
	assert.Equal(t, "7", parseArgs([]string{"7"}).ID)
}
