// Package profile holds the process configuration for the assistant NLU
// service. The profile is loaded once at startup and treated as read-only
// afterward.
package profile

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Profile is the configuration to start the NLU service.
type Profile struct {
	// Mode can be "prod" or "dev".
	Mode string
	// Addr is the binding address for the HTTP adapter.
	Addr string
	// Port is the binding port for the HTTP adapter.
	Port int
	// Timezone is the single configured local timezone, e.g. "Asia/Seoul".
	Timezone string
	// DefaultEventDurationMinutes is the length of a timed event when the
	// utterance carried no duration entity.
	DefaultEventDurationMinutes int
	// RecurrenceCount bounds repeating events built without an explicit count.
	RecurrenceCount int

	// LLM classifier configuration. The rule-based classifier is always
	// available; the LLM classifier is substituted only when enabled and
	// configured.
	LLMEnabled bool   // SION_LLM_ENABLED
	LLMBaseURL string // SION_LLM_BASE_URL
	LLMAPIKey  string // SION_LLM_API_KEY
	LLMModel   string // SION_LLM_MODEL

	// Version is the current version of the service.
	Version string
}

// FromViper loads the profile from viper-bound flags and SION_* environment
// variables.
func FromViper() (*Profile, error) {
	profile := &Profile{
		Mode:                        viper.GetString("mode"),
		Addr:                        viper.GetString("addr"),
		Port:                        viper.GetInt("port"),
		Timezone:                    viper.GetString("timezone"),
		DefaultEventDurationMinutes: viper.GetInt("event-duration"),
		RecurrenceCount:             viper.GetInt("recurrence-count"),
		LLMEnabled:                  viper.GetBool("llm-enabled"),
		LLMBaseURL:                  viper.GetString("llm-base-url"),
		LLMAPIKey:                   viper.GetString("llm-api-key"),
		LLMModel:                    viper.GetString("llm-model"),
		Version:                     "0.1.0",
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// Validate normalizes and checks the profile.
func (p *Profile) Validate() error {
	if p.Mode != "prod" && p.Mode != "dev" {
		p.Mode = "dev"
	}
	if p.Port < 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}
	if p.Timezone == "" {
		p.Timezone = "Asia/Seoul"
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return errors.Wrapf(err, "unable to load timezone %q", p.Timezone)
	}
	if p.DefaultEventDurationMinutes <= 0 {
		p.DefaultEventDurationMinutes = 60
	}
	if p.RecurrenceCount <= 0 {
		p.RecurrenceCount = 10
	}
	if p.LLMEnabled && p.LLMAPIKey == "" {
		return errors.New("llm classifier enabled without an api key")
	}
	return nil
}

// IsDev reports whether the service runs in development mode.
func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// Location returns the configured local timezone.
func (p *Profile) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
