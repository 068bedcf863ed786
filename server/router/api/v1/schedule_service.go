package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/espada105/Personal-Assistant-SION/internal/apierr"
	"github.com/espada105/Personal-Assistant-SION/internal/profile"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/calendar"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/temporal"
)

// ScheduleService handles calendar range resolution and event construction.
type ScheduleService struct {
	Profile  *profile.Profile
	Parser   *temporal.Parser
	Resolver *temporal.Resolver
	Builder  *calendar.EventBuilder
}

type rangeRequest struct {
	PeriodType string `json:"period_type"`
	Relative   string `json:"relative"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	// Now overrides the reference instant, RFC3339. Empty means wall clock.
	Now string `json:"now"`
}

// ResolveRange resolves a period description into a concrete date window.
func (s *ScheduleService) ResolveRange(c echo.Context) error {
	var req rangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	now, err := s.referenceTime(req.Now)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid now timestamp")
	}

	query := temporal.PeriodQuery{
		Type:     temporal.PeriodType(req.PeriodType),
		Relative: temporal.Relative(req.Relative),
		Year:     req.Year,
		Month:    req.Month,
	}
	// A lenient date token that cannot be parsed counts as absent, so the
	// resolver applies its own defaults.
	if req.StartDate != "" {
		if d, source := s.Parser.ParseDateDetail(req.StartDate, now); source != temporal.DateSourceDefaulted {
			query.StartDate = d
		}
	}
	if req.EndDate != "" {
		if d, source := s.Parser.ParseDateDetail(req.EndDate, now); source != temporal.DateSourceDefaulted {
			query.EndDate = d
		}
	}

	window, err := s.Resolver.Resolve(query, now)
	if err != nil {
		if apierr.IsCode(err, apierr.ErrCodeInvalidArgument) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, window)
}

type eventRequest struct {
	Title           string `json:"title"`
	Date            string `json:"date"`
	EndDate         string `json:"end_date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	AllDay          bool   `json:"all_day"`
	Recurrence      string `json:"recurrence"`
	RecurrenceCount int    `json:"recurrence_count"`
	Now             string `json:"now"`
}

type eventResponse struct {
	Event calendar.EventSpec `json:"event"`
	RRule string             `json:"rrule,omitempty"`
}

// BuildEvent assembles an event specification from extracted entity tokens.
func (s *ScheduleService) BuildEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	now, err := s.referenceTime(req.Now)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid now timestamp")
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = s.Profile.DefaultEventDurationMinutes
	}
	params := calendar.EventParams{
		Title:           req.Title,
		StartDate:       s.Parser.ParseDate(req.Date, now),
		TimeToken:       req.Time,
		DurationMinutes: duration,
		AllDay:          req.AllDay,
	}
	if req.EndDate != "" {
		if d, source := s.Parser.ParseDateDetail(req.EndDate, now); source != temporal.DateSourceDefaulted {
			params.EndDate = d
		}
	}
	if req.Recurrence != "" {
		count := req.RecurrenceCount
		if count <= 0 {
			count = s.Profile.RecurrenceCount
		}
		params.Recurrence = calendar.BuildRecurrence(req.Recurrence, count)
	}

	spec, err := s.Builder.Build(params)
	if err != nil {
		if apierr.IsCode(err, apierr.ErrCodeInvalidArgument) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := eventResponse{Event: spec}
	if spec.Recurrence != nil {
		resp.RRule = spec.Recurrence.RRule()
	}
	return c.JSON(http.StatusOK, resp)
}

// referenceTime parses the optional now override in the configured timezone.
func (s *ScheduleService) referenceTime(token string) (time.Time, error) {
	if token == "" {
		return time.Now().In(s.Profile.Location()), nil
	}
	t, err := time.Parse(time.RFC3339, token)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(s.Profile.Location()), nil
}
