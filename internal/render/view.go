// Package render composes the activity page. Every component is a pure
// function from immutable input to a view value; Write turns the finished
// view tree into HTML.
package render

import (
	"errors"
	"html/template"
	"net/url"
	"strconv"
	"time"

	"ghactivity/internal/badge"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/relativetime"

	"github.com/rs/zerolog/log"
)

type Options struct {
	Title      string
	MaxWidth   int
	AvatarSize int
	// Reference is the instant relative times are computed against. The
	// zero value means the wall clock at render time.
	Reference time.Time
}

type PageView struct {
	MaxWidth int
	Header   HeaderView
	List     ListView
}

type HeaderView struct {
	Title string
}

type ListView struct {
	Items []ItemView
}

type ItemView struct {
	URL          string
	Title        string
	Number       int64
	OwnerLogin   string
	AvatarURL    string
	AvatarSize   int
	Repository   string
	RelativeTime string
	CreatedAt    string
	Badge        BadgeView
}

type BadgeView struct {
	IconKey string
	Label   string
	Color   string
	Icon    template.HTML
}

var timeNow = time.Now

var ErrNilActivity = errors.New("activity list contains a nil entry")

func Page(activities []*activity.Entity, o Options) (PageView, error) {
	ref := o.Reference
	if ref.IsZero() {
		ref = timeNow()
	}

	list, err := List(activities, ref, o.AvatarSize)
	if err != nil {
		return PageView{}, err
	}

	return PageView{
		MaxWidth: o.MaxWidth,
		Header:   Header(o.Title),
		List:     list,
	}, nil
}

func Header(title string) HeaderView {
	return HeaderView{Title: title}
}

func List(activities []*activity.Entity, reference time.Time, avatarSize int) (ListView, error) {
	items := make([]ItemView, 0, len(activities))
	for _, a := range activities {
		item, err := Item(a, reference, avatarSize)
		if err != nil {
			return ListView{}, err
		}
		items = append(items, item)
	}

	return ListView{Items: items}, nil
}

// Item builds one row. An activity that cannot be classified gets the
// unknown badge; the row is still rendered.
func Item(a *activity.Entity, reference time.Time, avatarSize int) (ItemView, error) {
	if a == nil {
		return ItemView{}, ErrNilActivity
	}

	b, err := Classify(a)
	if err != nil {
		return ItemView{}, err
	}

	item := ItemView{
		URL:        a.URL,
		Title:      a.Title,
		Number:     a.Number,
		OwnerLogin: a.Repository.Owner.Login,
		AvatarURL:  sizedAvatarURL(a.Repository.Owner.AvatarURL, avatarSize),
		AvatarSize: avatarSize,
		Repository: a.Repository.Name,
		Badge:      Badge(b),
	}
	// Node types without fields arrive with no timestamp.
	if !a.Created.IsZero() {
		item.RelativeTime = relativetime.Format(a.Created, reference)
		item.CreatedAt = a.Created.UTC().Format(time.RFC3339)
	}

	return item, nil
}

// Classify wraps badge.Classify with the fallback used by every renderer:
// classification errors become the unknown badge, anything else is returned.
func Classify(a *activity.Entity) (badge.Badge, error) {
	b, err := badge.Classify(a)
	if errors.Is(err, badge.ErrClassification) {
		ev := log.Warn().Err(err)
		if a != nil {
			ev = ev.Str("url", a.URL)
		}
		ev.Msg("rendering fallback badge")

		return badge.Unknown, nil
	}

	return b, err
}

func Badge(b badge.Badge) BadgeView {
	return BadgeView{
		IconKey: b.IconKey,
		Label:   b.Label,
		Color:   string(b.ColorCategory),
		Icon:    Icon(b.IconKey),
	}
}

func sizedAvatarURL(raw string, size int) string {
	if raw == "" || size <= 0 {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	return u.String()
}
