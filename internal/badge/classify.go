// Package badge maps an activity's state to the badge shown next to it: an
// icon key, a short label and a color category.
package badge

import (
	"ghactivity/internal/domain/activity"
)

type ColorCategory string

const (
	ColorNeutral  ColorCategory = "neutral"
	ColorPositive ColorCategory = "positive"
	ColorAccent   ColorCategory = "accent"
	ColorNegative ColorCategory = "negative"
)

const (
	IconPullRequestDraft      = "pr-draft"
	IconPullRequestOpen       = "pr-open"
	IconPullRequestMerged     = "pr-merged"
	IconPullRequestClosed     = "pr-closed"
	IconIssueOpen             = "issue-open"
	IconIssueClosedNotPlanned = "issue-closed-not-planned"
	IconIssueClosedCompleted  = "issue-closed-completed"
	IconIssueClosedDuplicate  = "issue-closed-duplicate"
	IconIssueClosed           = "issue-closed"
	IconUnknown               = "unknown"
)

type Badge struct {
	IconKey       string
	Label         string
	ColorCategory ColorCategory
}

var badges = map[string]Badge{
	IconPullRequestDraft:      {IconPullRequestDraft, "Draft", ColorNeutral},
	IconPullRequestOpen:       {IconPullRequestOpen, "Open", ColorPositive},
	IconPullRequestMerged:     {IconPullRequestMerged, "Merged", ColorAccent},
	IconPullRequestClosed:     {IconPullRequestClosed, "Closed", ColorNegative},
	IconIssueOpen:             {IconIssueOpen, "Open", ColorPositive},
	IconIssueClosedNotPlanned: {IconIssueClosedNotPlanned, "Not Planned", ColorNeutral},
	IconIssueClosedCompleted:  {IconIssueClosedCompleted, "Completed", ColorAccent},
	IconIssueClosedDuplicate:  {IconIssueClosedDuplicate, "Duplicate", ColorNeutral},
	IconIssueClosed:           {IconIssueClosed, "Closed", ColorNegative},
}

// Unknown is shown by renderers that choose to keep going after a
// classification error.
var Unknown = Badge{IconUnknown, "Unknown", ColorNeutral}

// IconKeys lists every key Classify can return, in table order.
func IconKeys() []string {
	return []string{
		IconPullRequestDraft,
		IconPullRequestOpen,
		IconPullRequestMerged,
		IconPullRequestClosed,
		IconIssueOpen,
		IconIssueClosedNotPlanned,
		IconIssueClosedCompleted,
		IconIssueClosedDuplicate,
		IconIssueClosed,
	}
}

// Classify returns the badge for a. Fields that do not apply to the current
// state are ignored: the close reason of an open issue and the draft flag of
// a merged or closed pull request.
func Classify(a *activity.Entity) (Badge, error) {
	if a == nil {
		return Badge{}, &ClassificationError{Detail: "nil activity"}
	}

	switch a.Kind {
	case activity.KindPullRequest:
		return classifyPullRequest(a)
	case activity.KindIssue:
		return classifyIssue(a)
	}

	return Badge{}, &ClassificationError{Kind: a.Kind, Detail: "unknown kind"}
}

func classifyPullRequest(a *activity.Entity) (Badge, error) {
	pr := a.PullRequest
	if pr == nil {
		return Badge{}, &ClassificationError{Kind: a.Kind, Detail: "missing pull request fields"}
	}

	switch pr.State {
	case activity.PullRequestStateOpen:
		if pr.IsDraft {
			return badges[IconPullRequestDraft], nil
		}
		return badges[IconPullRequestOpen], nil
	case activity.PullRequestStateMerged:
		return badges[IconPullRequestMerged], nil
	case activity.PullRequestStateClosed:
		return badges[IconPullRequestClosed], nil
	}

	return Badge{}, &ClassificationError{Kind: a.Kind, State: string(pr.State)}
}

func classifyIssue(a *activity.Entity) (Badge, error) {
	is := a.Issue
	if is == nil {
		return Badge{}, &ClassificationError{Kind: a.Kind, Detail: "missing issue fields"}
	}

	switch is.State {
	case activity.IssueStateOpen:
		return badges[IconIssueOpen], nil
	case activity.IssueStateClosed:
		switch is.StateReason {
		case activity.StateReasonNotPlanned:
			return badges[IconIssueClosedNotPlanned], nil
		case activity.StateReasonCompleted:
			return badges[IconIssueClosedCompleted], nil
		case activity.StateReasonDuplicate:
			return badges[IconIssueClosedDuplicate], nil
		}

		// Any other reason, REOPENED included, reads as a plain close.
		return badges[IconIssueClosed], nil
	}

	return Badge{}, &ClassificationError{
		Kind:   a.Kind,
		State:  string(is.State),
		Reason: string(is.StateReason),
	}
}
