package tui

import (
	"fmt"
	"strings"
	"time"

	"ghactivity/internal/badge"
	"ghactivity/internal/domain/activity"
	"ghactivity/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	NormalColor = tcell.ColorWhite
	MutedColor  = tcell.ColorGray
)

var badgeColors = map[badge.ColorCategory]tcell.Color{
	badge.ColorNeutral:  tcell.ColorGray,
	badge.ColorPositive: tcell.ColorGreen,
	badge.ColorAccent:   tcell.ColorPurple,
	badge.ColorNegative: tcell.ColorFireBrick,
}

func badgeColor(c string) tcell.Color {
	if color, ok := badgeColors[badge.ColorCategory(c)]; ok {
		return color
	}

	return NormalColor
}

func pad(input string) string {
	return fmt.Sprintf(" %s", input)
}

var headers = []string{"STATE", "#", "REPOSITORY", "TITLE", "CREATED"}

type activityTable struct {
	View       *tview.Table
	activities []*activity.Entity
	// visible maps table rows, header excluded, to activities.
	visible []*activity.Entity
	filter  string
}

func newActivityTable(activities []*activity.Entity) *activityTable {
	table := tview.NewTable()
	table.
		SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(true, false)

	return &activityTable{
		View:       table,
		activities: activities,
	}
}

func (t *activityTable) Filter(text string) {
	t.filter = strings.ToLower(strings.TrimSpace(text))
}

func (t *activityTable) matches(a *activity.Entity) bool {
	if t.filter == "" {
		return true
	}

	return strings.Contains(strings.ToLower(a.Title), t.filter) ||
		strings.Contains(strings.ToLower(a.Repository.FullName()), t.filter)
}

// Redraw rebuilds every row with relative times computed against reference.
func (t *activityTable) Redraw(reference time.Time) error {
	row, _ := t.View.GetSelection()
	t.View.Clear()

	headerStyle := tcell.StyleDefault.Bold(true)
	for i, h := range headers {
		t.View.SetCell(0, i,
			tview.NewTableCell(pad(h)).
				SetSelectable(false).
				SetStyle(headerStyle),
		)
	}

	t.visible = t.visible[:0]
	for _, a := range t.activities {
		if !t.matches(a) {
			continue
		}

		item, err := render.Item(a, reference, 0)
		if err != nil {
			return err
		}

		r := len(t.visible) + 1
		t.visible = append(t.visible, a)

		t.View.SetCell(r, 0, tview.NewTableCell(pad(item.Badge.Label)).
			SetTextColor(badgeColor(item.Badge.Color)))
		t.View.SetCell(r, 1, tview.NewTableCell(pad(fmt.Sprint(item.Number))).
			SetTextColor(MutedColor))
		t.View.SetCell(r, 2, tview.NewTableCell(pad(tview.Escape(a.Repository.FullName()))).
			SetTextColor(MutedColor))
		t.View.SetCell(r, 3, tview.NewTableCell(pad(tview.Escape(item.Title))).
			SetTextColor(NormalColor).
			SetExpansion(1))
		t.View.SetCell(r, 4, tview.NewTableCell(pad(item.RelativeTime)).
			SetTextColor(MutedColor).
			SetAlign(tview.AlignRight))
	}

	if row < 1 {
		row = 1
	}
	if row > len(t.visible) {
		row = len(t.visible)
	}
	if row >= 1 {
		t.View.Select(row, 0)
	}

	return nil
}

func (t *activityTable) Selected() *activity.Entity {
	row, _ := t.View.GetSelection()
	if row < 1 || row > len(t.visible) {
		return nil
	}

	return t.visible[row-1]
}
