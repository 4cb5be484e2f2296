package activity

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindIssue       Kind = "Issue"
	KindPullRequest Kind = "PullRequest"
)

type IssueState string

const (
	IssueStateOpen   IssueState = "OPEN"
	IssueStateClosed IssueState = "CLOSED"
)

// StateReason is only meaningful for closed issues. An empty value means
// the data source reported no reason.
type StateReason string

const (
	StateReasonNone       StateReason = ""
	StateReasonReopened   StateReason = "REOPENED"
	StateReasonNotPlanned StateReason = "NOT_PLANNED"
	StateReasonCompleted  StateReason = "COMPLETED"
	StateReasonDuplicate  StateReason = "DUPLICATE"
)

type PullRequestState string

const (
	PullRequestStateOpen   PullRequestState = "OPEN"
	PullRequestStateMerged PullRequestState = "MERGED"
	PullRequestStateClosed PullRequestState = "CLOSED"
)

type Owner struct {
	Login     string
	AvatarURL string
	URL       string
}

type RepositoryDescriptor struct {
	Owner Owner
	Name  string
}

func (r RepositoryDescriptor) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner.Login, r.Name)
}

type IssueFields struct {
	State       IssueState
	StateReason StateReason
}

type PullRequestFields struct {
	State   PullRequestState
	IsDraft bool
}

// Entity is a single issue or pull request. Kind decides which of Issue and
// PullRequest is set; the other one is nil.
type Entity struct {
	Kind       Kind
	Created    time.Time
	Title      string
	URL        string
	Number     int64
	Repository RepositoryDescriptor

	Issue       *IssueFields
	PullRequest *PullRequestFields
}

func NewIssue(e Entity, state IssueState, reason StateReason) *Entity {
	e.Kind = KindIssue
	e.Issue = &IssueFields{State: state, StateReason: reason}
	e.PullRequest = nil

	return &e
}

func NewPullRequest(e Entity, state PullRequestState, draft bool) *Entity {
	e.Kind = KindPullRequest
	e.PullRequest = &PullRequestFields{State: state, IsDraft: draft}
	e.Issue = nil

	return &e
}
