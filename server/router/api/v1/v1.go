package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/espada105/Personal-Assistant-SION/internal/profile"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/calendar"
	"github.com/espada105/Personal-Assistant-SION/plugin/nlu/temporal"
)

// APIV1Service groups the v1 HTTP handlers.
type APIV1Service struct {
	Profile  *profile.Profile
	NLU      *NLUService
	Schedule *ScheduleService
}

// NewAPIV1Service creates the v1 service around a shared analysis engine.
func NewAPIV1Service(p *profile.Profile, engine *nlu.Engine) *APIV1Service {
	parser := temporal.NewParser()
	return &APIV1Service{
		Profile: p,
		NLU:     &NLUService{Engine: engine},
		Schedule: &ScheduleService{
			Profile:  p,
			Parser:   parser,
			Resolver: temporal.NewResolver(),
			Builder:  calendar.NewEventBuilder(),
		},
	}
}

// Register attaches the v1 routes to the echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	e.GET("/healthz", s.health)

	g := e.Group("/api/v1")
	g.POST("/nlu/analyze", s.NLU.Analyze)
	g.POST("/nlu/classify", s.NLU.Classify)
	g.POST("/schedule/range", s.Schedule.ResolveRange)
	g.POST("/schedule/event", s.Schedule.BuildEvent)
}

func (s *APIV1Service) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.Profile.Version,
	})
}
