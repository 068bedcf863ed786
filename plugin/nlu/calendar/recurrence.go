// Package calendar builds calendar-ready event and recurrence specifications
// from resolved entities. It produces value objects only; handing them to a
// calendar provider is the caller's concern.
package calendar

import (
	"fmt"
	"strings"
)

// Frequency is the recurrence frequency, in iCalendar vocabulary.
type Frequency string

const (
	Yearly  Frequency = "YEARLY"
	Monthly Frequency = "MONTHLY"
	Weekly  Frequency = "WEEKLY"
	Daily   Frequency = "DAILY"
)

// DefaultRecurrenceCount bounds repeating events when the user gave no count.
// There is deliberately no unbounded recurrence: a runaway repeat keyword
// must never turn into an unlimited series of calendar writes.
const DefaultRecurrenceCount = 10

// RecurrenceSpec is a bounded repeat rule. Count is always positive.
type RecurrenceSpec struct {
	Frequency Frequency `json:"frequency"`
	Count     int       `json:"count"`
}

// frequencyKeywords maps recurrence keywords, including the Korean aliases
// used by the assistant, to frequencies.
var frequencyKeywords = map[string]Frequency{
	"yearly":  Yearly,
	"매년":      Yearly,
	"monthly": Monthly,
	"매월":      Monthly,
	"매달":      Monthly,
	"weekly":  Weekly,
	"매주":      Weekly,
	"daily":   Daily,
	"매일":      Daily,
}

// BuildRecurrence maps a recurrence keyword and an optional count to a
// bounded repeat spec. An unrecognized keyword means no recurrence and
// returns nil, never an error. A count of zero or less takes the default.
func BuildRecurrence(keyword string, count int) *RecurrenceSpec {
	freq, ok := frequencyKeywords[strings.ToLower(strings.TrimSpace(keyword))]
	if !ok {
		return nil
	}

	if count <= 0 {
		count = DefaultRecurrenceCount
	}

	return &RecurrenceSpec{Frequency: freq, Count: count}
}

// RRule renders the spec as an iCalendar RFC 5545 recurrence rule. The COUNT
// part is always present because the spec is always bounded.
func (s *RecurrenceSpec) RRule() string {
	return fmt.Sprintf("FREQ=%s;COUNT=%d", s.Frequency, s.Count)
}
