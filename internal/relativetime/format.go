// Package relativetime renders timestamps as English phrases relative to a
// reference point, e.g. "3 days ago", "in 2 hours" or "yesterday".
package relativetime

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

type Unit string

const (
	Year   Unit = "year"
	Month  Unit = "month"
	Day    Unit = "day"
	Hour   Unit = "hour"
	Minute Unit = "minute"
	Second Unit = "second"
)

// Unit lengths in milliseconds. A year is always 365 days and a month is a
// twelfth of that.
const (
	dayMs    int64 = 24 * 60 * 60 * 1000
	yearMs         = 365 * dayMs
	monthMs        = yearMs / 12
	hourMs   int64 = 60 * 60 * 1000
	minuteMs int64 = 60 * 1000
	secondMs int64 = 1000
)

type unitLength struct {
	unit Unit
	ms   int64
}

// Largest first; selection depends on this order.
var units = []unitLength{
	{Year, yearMs},
	{Month, monthMs},
	{Day, dayMs},
	{Hour, hourMs},
	{Minute, minuteMs},
	{Second, secondMs},
}

var timeNow = time.Now

// Length returns the length of u in milliseconds.
func Length(u Unit) int64 {
	for _, ul := range units {
		if ul.unit == u {
			return ul.ms
		}
	}

	return 0
}

// Select picks the first unit whose length is strictly exceeded by the
// absolute elapsed time and returns the elapsed time rounded to that unit.
// Second is used when no unit matched.
func Select(elapsedMs int64) (Unit, int64) {
	abs := elapsedMs
	if abs < 0 {
		abs = -abs
	}

	for _, ul := range units {
		if abs > ul.ms || ul.unit == Second {
			return ul.unit, int64(math.Round(float64(elapsedMs) / float64(ul.ms)))
		}
	}

	// unreachable, Second always matches
	return Second, 0
}

// Format describes target relative to reference. Targets before the
// reference are in the past ("... ago"), later ones in the future ("in ...").
func Format(target, reference time.Time) string {
	elapsed := target.Sub(reference).Milliseconds()

	return Phrase(Select(elapsed))
}

// FormatNow is Format with the current wall clock as reference.
func FormatNow(target time.Time) string {
	return Format(target, timeNow())
}

var autoPhrases = map[Unit]map[int64]string{
	Second: {0: "now"},
	Minute: {0: "this minute"},
	Hour:   {0: "this hour"},
	Day:    {-1: "yesterday", 0: "today", 1: "tomorrow"},
	Month:  {-1: "last month", 0: "this month", 1: "next month"},
	Year:   {-1: "last year", 0: "this year", 1: "next year"},
}

// Phrase renders value units relative to now, preferring the idiomatic
// phrase where English has one.
func Phrase(u Unit, value int64) string {
	if p, ok := autoPhrases[u][value]; ok {
		return p
	}

	n := value
	if n < 0 {
		n = -n
	}

	name := string(u)
	if n != 1 {
		name += "s"
	}

	if value < 0 {
		return fmt.Sprintf("%s %s ago", humanize.Comma(n), name)
	}

	return fmt.Sprintf("in %s %s", humanize.Comma(n), name)
}
