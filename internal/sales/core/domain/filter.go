package domain

import "time"

// FilterSpec selects a subset of a Table. Start and End are inclusive.
// An empty Products or Cities set places no restriction on that column.
type FilterSpec struct {
	Start    time.Time
	End      time.Time
	Products []string
	Cities   []string
}

// NewFilterSpec builds a FilterSpec from calendar dates. A zero start or
// end collapses the range onto the other date; End is moved to the last
// instant of its day.
func NewFilterSpec(start, end time.Time, products, cities []string) FilterSpec {
	if start.IsZero() {
		start = end
	}
	if end.IsZero() {
		end = start
	}
	return FilterSpec{
		Start:    StartOfDay(start),
		End:      EndOfDay(end),
		Products: products,
		Cities:   cities,
	}
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
