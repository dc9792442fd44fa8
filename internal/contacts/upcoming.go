package contacts

import (
	"sort"
	"strings"
	"time"
)

// DefaultWindowDays is the length of the upcoming-birthday window,
// counted from the reference date inclusive.
const DefaultWindowDays = 7

// upcomingOptions holds settings for UpcomingBirthdays.
type upcomingOptions struct {
	window      int
	leapDay     LeapDayPolicy
	rollWeekend bool
}

// UpcomingOption configures UpcomingBirthdays.
type UpcomingOption func(*upcomingOptions)

// WithWindow sets the window length in days. Values below 1 are ignored.
func WithWindow(days int) UpcomingOption {
	return func(o *upcomingOptions) {
		if days >= 1 {
			o.window = days
		}
	}
}

// WithLeapDayPolicy sets where 29 February birthdays land in non-leap
// years. Unknown policies are ignored.
func WithLeapDayPolicy(p LeapDayPolicy) UpcomingOption {
	return func(o *upcomingOptions) {
		if p.Valid() {
			o.leapDay = p
		}
	}
}

// WithWeekendRollForward controls whether Saturday and Sunday birthdays
// are reported under Monday. It is on by default.
func WithWeekendRollForward(on bool) UpcomingOption {
	return func(o *upcomingOptions) {
		o.rollWeekend = on
	}
}

// DayGroup lists the contacts celebrated on one weekday.
type DayGroup struct {
	Day   time.Weekday
	Names []string
}

// Upcoming is the upcoming-birthday report: one group per weekday label,
// ordered by the earliest birthday in each group. Groups are not listed in
// the order their first contact was added to the book.
type Upcoming []DayGroup

// Names returns the names grouped under day, or nil.
func (u Upcoming) Names(day time.Weekday) []string {
	for _, g := range u {
		if g.Day == day {
			return g.Names
		}
	}
	return nil
}

// Lines renders one "Weekday: a, b" line per group.
func (u Upcoming) Lines() []string {
	lines := make([]string, len(u))
	for i, g := range u {
		lines[i] = g.Day.String() + ": " + strings.Join(g.Names, ", ")
	}
	return lines
}

// UpcomingBirthdays reports the contacts whose next birthday falls within
// the window starting at ref's date. Birthdays already past this year are
// taken from next year. Names within a group keep the book's order.
func (b *AddressBook) UpcomingBirthdays(ref time.Time, opts ...UpcomingOption) Upcoming {
	o := upcomingOptions{
		window:      DefaultWindowDays,
		leapDay:     LeapDayMarch1,
		rollWeekend: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	y, m, d := ref.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var (
		out   Upcoming
		first = map[time.Weekday]int{} // label -> earliest delta
		index = map[time.Weekday]int{} // label -> position in out
	)
	for _, k := range b.order {
		r := b.records[k]
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		next := bd.occurrence(today.Year(), o.leapDay)
		delta := daysBetween(today, next)
		if delta < 0 {
			next = bd.occurrence(today.Year()+1, o.leapDay)
			delta = daysBetween(today, next)
		}
		if delta < 0 || delta >= o.window {
			continue
		}

		day := next.Weekday()
		if o.rollWeekend && (day == time.Saturday || day == time.Sunday) {
			day = time.Monday
		}

		i, seen := index[day]
		if !seen {
			index[day] = len(out)
			first[day] = delta
			out = append(out, DayGroup{Day: day})
			i = index[day]
		} else if delta < first[day] {
			first[day] = delta
		}
		out[i].Names = append(out[i].Names, r.name)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return first[out[i].Day] < first[out[j].Day]
	})
	return out
}

// daysBetween returns whole days from a to b; both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
