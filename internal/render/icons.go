package render

import (
	"embed"
	"fmt"
	"html/template"

	"ghactivity/internal/badge"
)

//go:embed icons/*.svg
var iconFS embed.FS

// Octicon asset per badge icon key. Merged and open pull requests share the
// same glyph and differ only by color.
var iconFiles = map[string]string{
	badge.IconPullRequestDraft:      "git-pull-request-draft.svg",
	badge.IconPullRequestOpen:       "git-pull-request.svg",
	badge.IconPullRequestMerged:     "git-pull-request.svg",
	badge.IconPullRequestClosed:     "git-pull-request-closed.svg",
	badge.IconIssueOpen:             "issue-opened.svg",
	badge.IconIssueClosedNotPlanned: "issue-closed.svg",
	badge.IconIssueClosedCompleted:  "issue-closed.svg",
	badge.IconIssueClosedDuplicate:  "issue-closed.svg",
	badge.IconIssueClosed:           "issue-closed.svg",
	badge.IconUnknown:               "question.svg",
}

var icons = mustLoadIcons()

func mustLoadIcons() map[string]template.HTML {
	out := make(map[string]template.HTML, len(iconFiles))
	for key, file := range iconFiles {
		data, err := iconFS.ReadFile("icons/" + file)
		if err != nil {
			panic(fmt.Sprintf("missing icon asset %s for %s", file, key))
		}
		out[key] = template.HTML(data)
	}

	return out
}

// Icon returns the inline SVG for an icon key, falling back to the unknown
// glyph.
func Icon(key string) template.HTML {
	if svg, ok := icons[key]; ok {
		return svg
	}

	return icons[badge.IconUnknown]
}
