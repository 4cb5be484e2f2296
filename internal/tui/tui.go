package tui

import (
	"time"

	"ghactivity/internal/domain/activity"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

type Options struct {
	// Reference returns the instant relative times are computed against.
	Reference func() time.Time
	// Refresh is how often relative times are recomputed.
	Refresh time.Duration
	Open    func(url string) error
	Title   string
}

type Tui struct {
	app     *tview.Application
	table   *activityTable
	filter  *tview.InputField
	options Options
}

func NewTui(activities []*activity.Entity, o Options) *Tui {
	t := &Tui{
		app:     tview.NewApplication(),
		table:   newActivityTable(activities),
		filter:  tview.NewInputField(),
		options: o,
	}
	t.layout()

	return t
}

func (t *Tui) layout() {
	t.filter.
		SetPlaceholder("Filter activities").
		SetChangedFunc(func(text string) {
			t.table.Filter(text)
			t.redraw()
		}).
		SetBorder(true).
		SetTitle("Filter")

	t.filter.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			if t.filter.GetText() != "" {
				t.filter.SetText("")
			} else {
				t.app.SetFocus(t.table.View)
			}
		case tcell.KeyEnter:
			t.app.SetFocus(t.table.View)
		}

		return event
	})

	t.table.View.
		SetTitle(t.options.Title).
		SetBorder(true)

	t.table.View.SetSelectedFunc(func(row, column int) {
		t.openSelected()
	})

	t.table.View.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			t.app.Stop()
			return nil
		case '/':
			t.app.SetFocus(t.filter)
			return nil
		}

		return event
	})

	grid := tview.NewGrid().
		SetRows(0, 3).
		AddItem(t.table.View, 0, 0, 1, 1, 0, 0, true).
		AddItem(t.filter, 1, 0, 1, 1, 0, 0, false)

	t.app.SetRoot(grid, true)
}

func (t *Tui) redraw() {
	err := t.table.Redraw(t.options.Reference())
	if err != nil {
		log.Error().Err(err).Msg("could not draw activities")
	}
}

func (t *Tui) openSelected() {
	a := t.table.Selected()
	if a == nil || t.options.Open == nil {
		return
	}

	err := t.options.Open(a.URL)
	if err != nil {
		log.Error().Err(err).Str("url", a.URL).Msg("could not open activity")
	}
}

// Start blocks until the user quits.
func (t *Tui) Start() error {
	err := t.table.Redraw(t.options.Reference())
	if err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	if t.options.Refresh > 0 {
		go func() {
			ticker := time.NewTicker(t.options.Refresh)
			defer ticker.Stop()

			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					t.app.QueueUpdateDraw(t.redraw)
				}
			}
		}()
	}

	return t.app.Run()
}
