package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/lumiere/pkg/entry"
	"tableflip.dev/lumiere/pkg/query"
)

// Calendar prints the month of `on` with the entries written on each day.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...*entry.JournalEntry) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonthLong(then, entries...)
}

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonth prints the compact month grid, bolding days that have at
// least one entry.
func (pp *PrettyPrint) PrintMonth(then time.Time, entries ...*entry.JournalEntry) {
	days := DaysIn(then)

	count := make([]int, days)
	for day, matched := range query.Month(entries, then.Year(), then.Month()) {
		if day >= 1 && day <= days {
			count[day-1] = len(matched)
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		if i < d {
			fmt.Print("   ")
		}
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// PrintMonthLong prints each day of the month on its own line with the
// titles of the entries written that day.
func (pp *PrettyPrint) PrintMonthLong(then time.Time, entries ...*entry.JournalEntry) {
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)
	f := color.New(color.Faint)

	byDay := query.Month(entries, then.Year(), then.Month())

	now := time.Now()
	d := StartDay(then)
	for i := 0; i < DaysIn(then); i++ {
		printer := p
		isToday := now.Year() == then.Year() && now.Month() == then.Month() && now.Day() == i+1
		if isToday {
			printer = b
		}
		if d == time.Sunday {
			printer = s
			if isToday {
				printer = bs
			}
		}
		_, _ = printer.Printf("%2d %s", i+1, d.String()[0:1])

		if day := byDay[i+1]; len(day) > 0 {
			for j, e := range day {
				if j > 0 {
					_, _ = p.Print("\n     ")
				} else {
					_, _ = p.Print("  ")
				}
				g := e.Mood.Glyph()
				_, _ = p.Printf("%s %s", g.Symbol, pp.displayTitle(e))
				_, _ = f.Printf("  %s", e.CreatedAt.Local().Format("15:04"))
			}
		}
		_, _ = p.Printf("\n")

		d++
		if d > time.Saturday {
			d = time.Sunday
		}
	}
	fmt.Println("")
}

// Reminders prints upcoming reminders, soonest first as provided.
func (pp *PrettyPrint) Reminders(entries ...*entry.JournalEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	p := color.New()
	f := color.New(color.Faint)
	for _, e := range entries {
		if e.Reminder == nil {
			continue
		}
		_, _ = f.Printf("%s  ", e.Reminder.Local().Format("2006-01-02 15:04"))
		_, _ = p.Printf("%s\n", pp.displayTitle(e))
	}
	fmt.Println("")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
