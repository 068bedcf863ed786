package calendar

import (
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/espada105/Personal-Assistant-SION/internal/apierr"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/temporal"
)

// defaultTitle is used when the utterance yielded no usable title.
const defaultTitle = "새 일정"

// DefaultDurationMinutes is the length of a timed event when the user gave
// no duration.
const DefaultDurationMinutes = 60

// EventSpec is a fully resolved event request ready for a calendar
// collaborator. All-day events use calendar dates with an end-exclusive End,
// matching provider all-day semantics.
type EventSpec struct {
	UID        string          `json:"uid"`
	Title      string          `json:"title"`
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
	AllDay     bool            `json:"is_all_day"`
	Recurrence *RecurrenceSpec `json:"recurrence,omitempty"`
}

// EventParams carries the extracted entities an event is built from.
type EventParams struct {
	Title           string
	StartDate       time.Time
	EndDate         time.Time // zero means single-day
	TimeToken       string    // raw time entity, e.g. "오후 3시"
	DurationMinutes int
	AllDay          bool
	Recurrence      *RecurrenceSpec
}

// EventBuilder assembles event specifications from resolved entities.
type EventBuilder struct {
	parser *temporal.Parser
}

// NewEventBuilder creates an event builder.
func NewEventBuilder() *EventBuilder {
	return &EventBuilder{parser: temporal.NewParser()}
}

// Build assembles the event specification.
//
// A present end date makes the event all-day over [start, end+1d) regardless
// of the all-day flag. Without an end date, an all-day flag or a missing time
// token produces a single all-day event; otherwise the start date is combined
// with the parsed time and the duration.
//
// A zero start date is a caller contract violation: date tokens are parsed
// upstream with defaulting, so a zero here means the caller skipped parsing.
func (b *EventBuilder) Build(params EventParams) (EventSpec, error) {
	if params.StartDate.IsZero() {
		return EventSpec{}, apierr.InvalidArgument("event start date is required")
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = defaultTitle
	}

	spec := EventSpec{
		Title:      title,
		Recurrence: params.Recurrence,
	}

	switch {
	case !params.EndDate.IsZero():
		// Multi-day events are always all-day, end-exclusive.
		spec.AllDay = true
		spec.Start = startOfDay(params.StartDate)
		spec.End = startOfDay(params.EndDate).AddDate(0, 0, 1)

	case params.AllDay || strings.TrimSpace(params.TimeToken) == "":
		spec.AllDay = true
		spec.Start = startOfDay(params.StartDate)
		spec.End = spec.Start.AddDate(0, 0, 1)

	default:
		duration := params.DurationMinutes
		if duration <= 0 {
			duration = DefaultDurationMinutes
		}
		hour, minute := b.parser.ParseTime(params.TimeToken)
		spec.Start = time.Date(
			params.StartDate.Year(), params.StartDate.Month(), params.StartDate.Day(),
			hour, minute, 0, 0, params.StartDate.Location())
		spec.End = spec.Start.Add(time.Duration(duration) * time.Minute)
	}

	// The UID is derived from the content so identical inputs yield identical
	// specs; the calendar collaborator uses it as an idempotency key.
	spec.UID = shortuuid.NewWithNamespace(title + "/" + spec.Start.Format(time.RFC3339))

	return spec, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
