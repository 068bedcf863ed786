package temporal

import (
	"fmt"
	"time"

	"github.com/espada105/Personal-Assistant-SION/internal/apierr"
)

// PeriodType selects the shape of a calendar window.
type PeriodType string

const (
	// PeriodUnspecified resolves to a single-day range on now.
	PeriodUnspecified PeriodType = ""
	PeriodDay         PeriodType = "day"
	PeriodWeek        PeriodType = "week"
	PeriodMonth       PeriodType = "month"
	PeriodRange       PeriodType = "range"
)

// Relative is a relative modifier for a period query.
type Relative string

const (
	RelativeNone     Relative = ""
	RelativeCurrent  Relative = "current"
	RelativeNext     Relative = "next"
	RelativePrevious Relative = "previous"
	RelativeToday    Relative = "today"
	RelativeTomorrow Relative = "tomorrow"
	RelativeDayAfter Relative = "day_after"
)

// PeriodQuery is a caller-constructed description of a calendar window in
// relative or absolute terms. It is consumed once by Resolve and never
// persisted.
type PeriodQuery struct {
	Type      PeriodType `json:"period_type"`
	Relative  Relative   `json:"relative,omitempty"`
	Year      int        `json:"year,omitempty"`
	Month     int        `json:"month,omitempty"`
	StartDate time.Time  `json:"start_date,omitempty"`
	EndDate   time.Time  `json:"end_date,omitempty"`
}

// Range is a concrete [Start, End] window. Start <= End always holds. Label
// is a human description and never used for computation.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Contains reports whether t falls within the range, inclusive.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

const (
	dayLabelLayout   = "2006년 1월 2일"
	monthLabelLayout = "2006년 1월"
	shortDayLayout   = "1월 2일"
)

// Resolver turns period queries into concrete date ranges anchored on an
// explicit now. It is stateless and safe for concurrent use.
type Resolver struct{}

// NewResolver creates a period query resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve computes the concrete range for the query. The unspecified period
// type defaults to a single-day range on now; a period type outside the
// defined set is a caller contract violation and is rejected rather than
// silently defaulted.
func (r *Resolver) Resolve(query PeriodQuery, now time.Time) (Range, error) {
	switch query.Type {
	case PeriodDay, PeriodUnspecified:
		return r.resolveDay(query, now), nil
	case PeriodWeek:
		return r.resolveWeek(query, now), nil
	case PeriodMonth:
		return r.resolveMonth(query, now), nil
	case PeriodRange:
		return r.resolveRange(query, now), nil
	default:
		return Range{}, apierr.InvalidArgument(fmt.Sprintf("unsupported period type: %s", query.Type))
	}
}

func (r *Resolver) resolveDay(query PeriodQuery, now time.Time) Range {
	target := now
	if !query.StartDate.IsZero() {
		target = query.StartDate
	} else {
		switch query.Relative {
		case RelativeTomorrow, RelativeNext:
			target = now.AddDate(0, 0, 1)
		case RelativeDayAfter:
			target = now.AddDate(0, 0, 2)
		case RelativePrevious:
			target = now.AddDate(0, 0, -1)
		}
	}

	day := startOfDay(target)
	return Range{Start: day, End: day, Label: day.Format(dayLabelLayout)}
}

func (r *Resolver) resolveWeek(query PeriodQuery, now time.Time) Range {
	// Monday-start week.
	offset := (int(now.Weekday()) + 6) % 7
	anchor := startOfDay(now).AddDate(0, 0, -offset)

	switch query.Relative {
	case RelativeNext:
		anchor = anchor.AddDate(0, 0, 7)
	case RelativePrevious:
		anchor = anchor.AddDate(0, 0, -7)
	}

	end := anchor.AddDate(0, 0, 6)
	label := fmt.Sprintf("%s ~ %s", anchor.Format(dayLabelLayout), end.Format(shortDayLayout))
	return Range{Start: anchor, End: end, Label: label}
}

func (r *Resolver) resolveMonth(query PeriodQuery, now time.Time) Range {
	year, month := now.Year(), int(now.Month())

	if query.Month >= 1 && query.Month <= 12 {
		month = query.Month
		if query.Year != 0 {
			year = query.Year
		}
	} else {
		switch query.Relative {
		case RelativeNext:
			month++
			if month > 12 {
				month = 1
				year++
			}
		case RelativePrevious:
			month--
			if month < 1 {
				month = 12
				year--
			}
		}
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	// Last day of the month: first day of the following month minus one day.
	// time.Date normalizes month 13, which covers the year-end rollover.
	end := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)

	return Range{Start: start, End: end, Label: start.Format(monthLabelLayout)}
}

func (r *Resolver) resolveRange(query PeriodQuery, now time.Time) Range {
	if query.StartDate.IsZero() || query.EndDate.IsZero() {
		day := startOfDay(now)
		return Range{Start: day, End: day, Label: day.Format(dayLabelLayout)}
	}

	start := startOfDay(query.StartDate)
	end := startOfDay(query.EndDate)
	if end.Before(start) {
		start, end = end, start
	}

	label := fmt.Sprintf("%s ~ %s", start.Format(dayLabelLayout), end.Format(dayLabelLayout))
	return Range{Start: start, End: end, Label: label}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
