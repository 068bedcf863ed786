package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// anchor is a fixed Wednesday used as the reference instant in parser tests.
var anchor = time.Date(2024, 12, 11, 10, 30, 0, 0, time.UTC)

func TestParseDateDetail(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name       string
		token      string
		wantDate   time.Time
		wantSource DateSource
	}{
		{
			name:       "today keyword",
			token:      "오늘",
			wantDate:   anchor,
			wantSource: DateSourceKeyword,
		},
		{
			name:       "tomorrow keyword",
			token:      "내일",
			wantDate:   anchor.AddDate(0, 0, 1),
			wantSource: DateSourceKeyword,
		},
		{
			name:       "day after tomorrow keyword",
			token:      "모레",
			wantDate:   anchor.AddDate(0, 0, 2),
			wantSource: DateSourceKeyword,
		},
		{
			name:       "english keyword with surrounding space",
			token:      "  Tomorrow ",
			wantDate:   anchor.AddDate(0, 0, 1),
			wantSource: DateSourceKeyword,
		},
		{
			name:       "next week keyword",
			token:      "다음 주",
			wantDate:   anchor.AddDate(0, 0, 7),
			wantSource: DateSourceKeyword,
		},
		{
			name:       "iso date",
			token:      "2025-01-03",
			wantDate:   time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			wantSource: DateSourceExplicit,
		},
		{
			name:       "slash date without padding",
			token:      "2025/1/3",
			wantDate:   time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			wantSource: DateSourceExplicit,
		},
		{
			name:       "month day defaults to current year",
			token:      "12/25",
			wantDate:   time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
			wantSource: DateSourceExplicit,
		},
		{
			name:       "bare day of month",
			token:      "15일",
			wantDate:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			wantSource: DateSourceExplicit,
		},
		{
			name:       "unparseable token defaults to now",
			token:      "언젠가",
			wantDate:   anchor,
			wantSource: DateSourceDefaulted,
		},
		{
			name:       "empty token defaults to now",
			token:      "",
			wantDate:   anchor,
			wantSource: DateSourceDefaulted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := parser.ParseDateDetail(tt.token, anchor)
			assert.True(t, got.Equal(tt.wantDate), "got %v, want %v", got, tt.wantDate)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestParseTimeDetail(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name          string
		token         string
		wantHour      int
		wantMinute    int
		wantDefaulted bool
	}{
		{name: "afternoon hour", token: "오후 3시", wantHour: 15},
		{name: "morning hour", token: "오전 9시", wantHour: 9},
		{name: "afternoon noon stays noon", token: "오후 12시", wantHour: 12},
		{name: "morning twelve is midnight", token: "오전 12시", wantHour: 0},
		{name: "hour and minute", token: "3시 30분", wantHour: 3, wantMinute: 30},
		{name: "clock format", token: "14:30", wantHour: 14, wantMinute: 30},
		{name: "english pm", token: "3 PM", wantHour: 15},
		{name: "no digits defaults", token: "저녁에", wantHour: 9, wantDefaulted: true},
		{name: "empty defaults", token: "", wantHour: 9, wantDefaulted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, defaulted := parser.ParseTimeDetail(tt.token)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
			assert.Equal(t, tt.wantDefaulted, defaulted)
		})
	}
}

func TestParseDateKeepsLocation(t *testing.T) {
	parser := NewParser()
	seoul := time.FixedZone("KST", 9*60*60)
	now := time.Date(2024, 12, 11, 10, 0, 0, 0, seoul)

	got := parser.ParseDate("2024-12-25", now)
	assert.Equal(t, seoul, got.Location())
}
