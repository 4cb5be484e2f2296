package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestEntity(number int64, created time.Time) Entity {
	return Entity{
		Number:  number,
		Created: created,
		Repository: RepositoryDescriptor{
			Owner: Owner{Login: "octocat"},
			Name:  "hello-world",
		},
	}
}

func Test_RepositoryDescriptor_FullName(t *testing.T) {
	r := RepositoryDescriptor{Owner: Owner{Login: "octocat"}, Name: "hello-world"}
	assert.Equal(t, "octocat/hello-world", r.FullName())
}

func Test_NewIssue(t *testing.T) {
	t.Run("sets kind and issue fields only", func(t *testing.T) {
		base := newTestEntity(1, time.Time{})
		base.PullRequest = &PullRequestFields{}

		e := NewIssue(base, IssueStateClosed, StateReasonCompleted)

		assert.Equal(t, KindIssue, e.Kind)
		assert.Nil(t, e.PullRequest)
		assert.Equal(t, IssueStateClosed, e.Issue.State)
		assert.Equal(t, StateReasonCompleted, e.Issue.StateReason)
	})
}

func Test_NewPullRequest(t *testing.T) {
	t.Run("sets kind and pull request fields only", func(t *testing.T) {
		e := NewPullRequest(newTestEntity(2, time.Time{}), PullRequestStateOpen, true)

		assert.Equal(t, KindPullRequest, e.Kind)
		assert.Nil(t, e.Issue)
		assert.True(t, e.PullRequest.IsDraft)
	})
}

func Test_List_Sorted(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := List{
		NewIssue(newTestEntity(1, t0), IssueStateOpen, StateReasonNone),
		NewIssue(newTestEntity(2, t0.Add(2*time.Hour)), IssueStateOpen, StateReasonNone),
		NewIssue(newTestEntity(3, t0.Add(time.Hour)), IssueStateOpen, StateReasonNone),
	}

	t.Run("keeps dataset order for none", func(t *testing.T) {
		out := l.Sorted(SortNone)
		assert.Equal(t, []int64{1, 2, 3}, numbers(out))
	})

	t.Run("orders newest first for created", func(t *testing.T) {
		out := l.Sorted(SortCreated)
		assert.Equal(t, []int64{2, 3, 1}, numbers(out))
		assert.Equal(t, []int64{1, 2, 3}, numbers(l))
	})
}

func Test_List_FindByNumber(t *testing.T) {
	l := List{NewIssue(newTestEntity(7, time.Time{}), IssueStateOpen, StateReasonNone)}

	e, ok := l.FindByNumber(7)
	assert.True(t, ok)
	assert.Equal(t, int64(7), e.Number)

	_, ok = l.FindByNumber(8)
	assert.False(t, ok)
}

func Test_ParseSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want SortOrder
		ok   bool
	}{
		{"", SortNone, true},
		{"none", SortNone, true},
		{"created", SortCreated, true},
		{"updated", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSortOrder(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func numbers(l List) []int64 {
	out := make([]int64, 0, len(l))
	for _, e := range l {
		out = append(out, e.Number)
	}

	return out
}
