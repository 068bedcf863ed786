package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleClassifierClassify(t *testing.T) {
	classifier := NewRuleClassifier()

	tests := []struct {
		name       string
		text       string
		wantIntent Intent
	}{
		{
			name:       "schedule check",
			text:       "내일 스케줄 확인",
			wantIntent: IntentScheduleCheck,
		},
		{
			name:       "schedule add with meeting keyword",
			text:       "내일 오후 3시에 회의 잡아줘",
			wantIntent: IntentScheduleAdd,
		},
		{
			name:       "schedule delete",
			text:       "금요일 약속 취소해줘",
			wantIntent: IntentScheduleDelete,
		},
		{
			name:       "schedule update",
			text:       "일정 변경하고 싶어",
			wantIntent: IntentScheduleUpdate,
		},
		{
			name:       "email send",
			text:       "김부장님께 메일 보내줘",
			wantIntent: IntentEmailSend,
		},
		{
			name:       "app open by name",
			text:       "크롬 켜줘",
			wantIntent: IntentAppOpen,
		},
		{
			name:       "weather check",
			text:       "오늘 날씨 어때",
			wantIntent: IntentWeatherCheck,
		},
		{
			name:       "timer set",
			text:       "10분 후 타이머 맞춰",
			wantIntent: IntentTimerSet,
		},
		{
			name:       "system control",
			text:       "볼륨 좀 줄여",
			wantIntent: IntentSystemControl,
		},
		{
			name:       "long unmatched input falls back to chat",
			text:       "요즘 너무 피곤한데 어떻게 하면 좋을까",
			wantIntent: IntentLLMChat,
		},
		{
			name:       "short unmatched input stays unknown",
			text:       "ㅎㅇ",
			wantIntent: IntentUnknown,
		},
		{
			name:       "empty input stays unknown",
			text:       "",
			wantIntent: IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := classifier.Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, match.Intent)
		})
	}
}

func TestRuleClassifierConfidenceBounds(t *testing.T) {
	classifier := NewRuleClassifier()

	inputs := []string{
		"",
		"ㅎㅇ",
		"내일 스케줄 확인",
		"내일 오후 3시에 회의 잡아줘",
		"오늘 날씨 어때",
		"요즘 너무 피곤한데 어떻게 하면 좋을까",
		"볼륨 밝기 종료 재부팅 음량",
	}

	for _, text := range inputs {
		match, err := classifier.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, match.Confidence, float32(0.3), "input %q", text)
		assert.LessOrEqual(t, match.Confidence, float32(0.9), "input %q", text)
	}
}

func TestRuleClassifierConfidenceCalibration(t *testing.T) {
	classifier := NewRuleClassifier()

	// No pattern match at all reports the floor.
	match, err := classifier.Classify(context.Background(), "ㅎㅇ")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, float64(match.Confidence), 1e-6)

	// A full table hit for system_control reports 0.3 + 1.0*0.6.
	match, err = classifier.Classify(context.Background(), "볼륨 음량 밝기 종료 재부팅")
	require.NoError(t, err)
	assert.Equal(t, IntentSystemControl, match.Intent)
	assert.InDelta(t, 0.9, float64(match.Confidence), 1e-6)

	// The chat fallback reports the calibrated midpoint.
	match, err = classifier.Classify(context.Background(), "요즘 너무 피곤한데 어떻게 하면 좋을까")
	require.NoError(t, err)
	assert.Equal(t, IntentLLMChat, match.Intent)
	assert.InDelta(t, 0.6, float64(match.Confidence), 1e-6)
}

func TestRuleClassifierTieBreakKeepsTableOrder(t *testing.T) {
	classifier := NewRuleClassifier()

	// 검색 and 알람 each score 1/3 for web_search and timer_set. web_search
	// comes first in the rule table and must win on every run.
	for i := 0; i < 10; i++ {
		match, err := classifier.Classify(context.Background(), "알람 검색")
		require.NoError(t, err)
		assert.Equal(t, IntentWebSearch, match.Intent)
	}
}

func TestRuleClassifierCaseFolding(t *testing.T) {
	classifier := NewRuleClassifier()

	lower, err := classifier.Classify(context.Background(), "tomorrow 스케줄 보여줘")
	require.NoError(t, err)
	upper, err := classifier.Classify(context.Background(), "TOMORROW 스케줄 보여줘")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}
