// Package temporal resolves natural-language date and time expressions into
// concrete instants and ranges. Every function takes the current instant as
// an explicit parameter so resolution is deterministic and testable.
package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateSource reports how a date token was resolved. It lets a consumer
// distinguish "user meant today" from "input was unparseable" without
// changing the defaulting behavior.
type DateSource string

const (
	// DateSourceKeyword means a relative keyword such as 내일 matched.
	DateSourceKeyword DateSource = "keyword"
	// DateSourceExplicit means an explicit date format matched.
	DateSourceExplicit DateSource = "explicit"
	// DateSourceDefaulted means nothing matched and now was returned.
	DateSourceDefaulted DateSource = "defaulted"
)

// relDateOffsets maps relative date keywords to day offsets.
var relDateOffsets = []struct {
	keyword string
	days    int
}{
	{"오늘", 0},
	{"today", 0},
	{"내일", 1},
	{"tomorrow", 1},
	{"모레", 2},
	{"day after tomorrow", 2},
}

// Patterns for lenient date/time token parsing.
var (
	digitsPattern   = regexp.MustCompile(`\d+`)
	dayOnlyPattern  = regexp.MustCompile(`^(\d{1,2})일$`)
	monthDayPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)
)

// dateLayouts are the explicit formats tried after keyword matching.
// Non-padded layouts accept both "12/11" and "1/2".
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
}

// Parser parses loosely formatted date and time tokens. It is stateless and
// safe for concurrent use.
type Parser struct{}

// NewParser creates a date/time token parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseDate parses a date token anchored on now. Parse failure is not an
// error: the token defaults to now so downstream logic always has a usable
// date. Use ParseDateDetail to detect the defaulted case.
func (p *Parser) ParseDate(token string, now time.Time) time.Time {
	parsed, _ := p.ParseDateDetail(token, now)
	return parsed
}

// ParseDateDetail parses a date token and reports how it was resolved.
func (p *Parser) ParseDateDetail(token string, now time.Time) (time.Time, DateSource) {
	trimmed := strings.ToLower(strings.TrimSpace(token))

	// Relative keywords take precedence over explicit formats.
	for _, rel := range relDateOffsets {
		if trimmed == rel.keyword {
			return now.AddDate(0, 0, rel.days), DateSourceKeyword
		}
	}
	if strings.Contains(trimmed, "다음 주") || strings.Contains(trimmed, "다음주") ||
		strings.Contains(trimmed, "next week") {
		return now.AddDate(0, 0, 7), DateSourceKeyword
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return t, DateSourceExplicit
		}
	}

	// MM/DD and MM-DD default to the current year.
	if m := monthDayPattern.FindStringSubmatch(trimmed); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location()), DateSourceExplicit
		}
	}

	// Bare day of month, e.g. "15일".
	if m := dayOnlyPattern.FindStringSubmatch(trimmed); m != nil {
		day, _ := strconv.Atoi(m[1])
		if day >= 1 && day <= 31 {
			return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location()), DateSourceExplicit
		}
	}

	return now, DateSourceDefaulted
}

// ParseTime extracts an (hour, minute) pair from a time token. Tokens without
// digits default to (9, 0). Use ParseTimeDetail to detect the defaulted case.
func (p *Parser) ParseTime(token string) (int, int) {
	hour, minute, _ := p.ParseTimeDetail(token)
	return hour, minute
}

// ParseTimeDetail parses a time token and reports whether the default was
// used. AM/PM markers are detected independently of digit extraction and the
// half-day conversion runs exactly once: a PM marker shifts hours below 12
// forward, otherwise an AM marker maps hour 12 to 0.
func (p *Parser) ParseTimeDetail(token string) (hour, minute int, defaulted bool) {
	lower := strings.ToLower(token)
	isPM := strings.Contains(token, "오후") || strings.Contains(lower, "pm")
	isAM := strings.Contains(token, "오전") || strings.Contains(lower, "am")

	numbers := digitsPattern.FindAllString(token, -1)
	if len(numbers) == 0 {
		return 9, 0, true
	}

	hour, _ = strconv.Atoi(numbers[0])
	if len(numbers) > 1 {
		minute, _ = strconv.Atoi(numbers[1])
	}

	if isPM && hour < 12 {
		hour += 12
	} else if isAM && hour == 12 {
		hour = 0
	}

	return hour, minute, false
}
