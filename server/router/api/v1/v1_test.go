package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espada105/Personal-Assistant-SION/internal/profile"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	p := &profile.Profile{}
	require.NoError(t, p.Validate())

	e := echo.New()
	NewAPIV1Service(p, nlu.NewEngine()).Register(e)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := postJSON(e, "/api/v1/nlu/analyze", `{"text": "내일 오후 3시에 회의 잡아줘"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Text   string `json:"text"`
		Intent struct {
			Intent     string  `json:"intent"`
			Confidence float32 `json:"confidence"`
		} `json:"intent"`
		Entities []struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, "schedule_add", result.Intent.Intent)
	assert.GreaterOrEqual(t, result.Intent.Confidence, float32(0.3))
	assert.NotEmpty(t, result.Entities)
}

func TestAnalyzeEndpointRequiresText(t *testing.T) {
	e := newTestServer(t)

	rec := postJSON(e, "/api/v1/nlu/analyze", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := postJSON(e, "/api/v1/nlu/classify", `{"text": "오늘 날씨 어때"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var match struct {
		Intent string `json:"intent"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &match))
	assert.Equal(t, "weather_check", match.Intent)
}

func TestResolveRangeEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := postJSON(e, "/api/v1/schedule/range",
		`{"period_type": "month", "relative": "next", "now": "2024-12-15T09:00:00+09:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var window struct {
		Start string `json:"start"`
		End   string `json:"end"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &window))
	assert.True(t, strings.HasPrefix(window.Start, "2025-01-01"))
	assert.True(t, strings.HasPrefix(window.End, "2025-01-31"))
	assert.NotEmpty(t, window.Label)
}

func TestResolveRangeEndpointRejectsUnknownType(t *testing.T) {
	e := newTestServer(t)

	rec := postJSON(e, "/api/v1/schedule/range", `{"period_type": "decade"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuildEventEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := postJSON(e, "/api/v1/schedule/event",
		`{"title": "팀 회의", "date": "내일", "time": "오후 3시", "recurrence": "매주", "now": "2024-12-11T09:00:00+09:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Event struct {
			UID    string `json:"uid"`
			Title  string `json:"title"`
			Start  string `json:"start"`
			AllDay bool   `json:"is_all_day"`
		} `json:"event"`
		RRule string `json:"rrule"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "팀 회의", resp.Event.Title)
	assert.NotEmpty(t, resp.Event.UID)
	assert.False(t, resp.Event.AllDay)
	assert.True(t, strings.HasPrefix(resp.Event.Start, "2024-12-12T15:00"))
	assert.Equal(t, "FREQ=WEEKLY;COUNT=10", resp.RRule)
}

func TestBuildEventEndpointRejectsBadNow(t *testing.T) {
	e := newTestServer(t)

	rec := postJSON(e, "/api/v1/schedule/event", `{"title": "회의", "now": "yesterday"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
