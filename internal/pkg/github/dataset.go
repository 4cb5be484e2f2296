package github

import (
	"io"
	"os"
	"time"

	"ghactivity/internal/domain/activity"
	"ghactivity/internal/errcodes"
	"ghactivity/internal/pkg/fs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// Search results are read from the edges list first and from the nodes
// list when the query selected nodes directly.
var nodePaths = []string{
	"data.search.edges.#.node",
	"data.search.nodes",
}

// Dataset reads activities from a pre-fetched GitHub GraphQL search result.
type Dataset struct {
	Path string
	FS   fs.Filesystem
}

func NewDataset(path string) *Dataset {
	return &Dataset{Path: path, FS: fs.OS{}}
}

func (d *Dataset) Load() ([]*activity.Entity, error) {
	info, err := d.FS.Stat(d.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(errcodes.ErrMissingDataset, d.Path)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.Wrap(errcodes.ErrDatasetIsDir, d.Path)
	}

	f, err := d.FS.Open(d.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read dataset %s", d.Path)
	}

	activities, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, d.Path)
	}

	log.Debug().
		Str("path", d.Path).
		Int("count", len(activities)).
		Msg("dataset loaded")

	return activities, nil
}

// Parse converts a search result document into activities, keeping the
// document order. Unknown state strings are kept as they are.
func Parse(data []byte) ([]*activity.Entity, error) {
	if !gjson.ValidBytes(data) {
		return nil, errcodes.ErrDatasetMalformed
	}

	parsed := gjson.ParseBytes(data)
	if errs := parsed.Get("errors"); errs.IsArray() && len(errs.Array()) > 0 {
		return nil, errors.Wrap(
			errcodes.ErrDatasetQueryFailed,
			errs.Get("0.message").String(),
		)
	}

	var nodes gjson.Result
	for _, p := range nodePaths {
		nodes = parsed.Get(p)
		if nodes.IsArray() {
			break
		}
	}
	if !nodes.IsArray() {
		return nil, errcodes.ErrDatasetMalformed
	}

	var (
		activities []*activity.Entity
		parseErr   error
		index      int
	)
	nodes.ForEach(func(_, value gjson.Result) bool {
		a, err := parseNode(value)
		if err != nil {
			parseErr = errors.Wrapf(err, "node %d", index)
			return false
		}
		activities = append(activities, a)
		index++

		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return activities, nil
}

func parseNode(node gjson.Result) (*activity.Entity, error) {
	kind := activity.Kind(node.Get("__typename").String())

	e := activity.Entity{
		Kind:   kind,
		Title:  node.Get("title").String(),
		URL:    node.Get("url").String(),
		Number: node.Get("number").Int(),
		Repository: activity.RepositoryDescriptor{
			Owner: activity.Owner{
				Login:     node.Get("repository.owner.login").String(),
				AvatarURL: node.Get("repository.owner.avatarUrl").String(),
				URL:       node.Get("repository.owner.url").String(),
			},
			Name: node.Get("repository.name").String(),
		},
	}

	created, err := time.Parse(time.RFC3339, node.Get("createdAt").String())
	switch kind {
	case activity.KindIssue, activity.KindPullRequest:
		if err != nil {
			return nil, errors.Wrap(errcodes.ErrDatasetMalformed, err.Error())
		}
		e.Created = created
	default:
		// Node types the query selects no fields for carry only __typename.
		if err == nil {
			e.Created = created
		}
	}

	switch kind {
	case activity.KindIssue:
		return activity.NewIssue(
			e,
			activity.IssueState(node.Get("issueState").String()),
			activity.StateReason(node.Get("stateReason").String()),
		), nil
	case activity.KindPullRequest:
		return activity.NewPullRequest(
			e,
			activity.PullRequestState(node.Get("prState").String()),
			node.Get("isDraft").Bool(),
		), nil
	}

	// Search can return other node types; the classifier reports them.
	log.Warn().Str("kind", string(kind)).Str("url", e.URL).Msg("unknown activity kind")

	return &e, nil
}
