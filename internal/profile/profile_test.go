package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	p := &Profile{}
	require.NoError(t, p.Validate())

	assert.Equal(t, "dev", p.Mode)
	assert.Equal(t, "Asia/Seoul", p.Timezone)
	assert.Equal(t, 60, p.DefaultEventDurationMinutes)
	assert.Equal(t, 10, p.RecurrenceCount)
	assert.True(t, p.IsDev())
}

func TestValidateRejectsBadPort(t *testing.T) {
	p := &Profile{Port: 70000}
	assert.Error(t, p.Validate())
}

func TestValidateRejectsBadTimezone(t *testing.T) {
	p := &Profile{Timezone: "Mars/Olympus"}
	assert.Error(t, p.Validate())
}

func TestValidateRequiresLLMKeyWhenEnabled(t *testing.T) {
	p := &Profile{LLMEnabled: true}
	assert.Error(t, p.Validate())

	p = &Profile{LLMEnabled: true, LLMAPIKey: "sk-test"}
	assert.NoError(t, p.Validate())
}

func TestLocation(t *testing.T) {
	p := &Profile{Timezone: "Asia/Seoul"}
	require.NoError(t, p.Validate())

	loc := p.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "Asia/Seoul", loc.String())
}
