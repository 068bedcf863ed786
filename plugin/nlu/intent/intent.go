// Package intent provides intent classification for user utterances.
package intent

import "context"

// Intent represents the classified purpose of an utterance.
type Intent string

const (
	IntentScheduleCheck  Intent = "schedule_check"
	IntentScheduleAdd    Intent = "schedule_add"
	IntentScheduleDelete Intent = "schedule_delete"
	IntentScheduleUpdate Intent = "schedule_update"
	IntentEmailCheck     Intent = "email_check"
	IntentEmailSend      Intent = "email_send"
	IntentFileSearch     Intent = "file_search"
	IntentFileOpen       Intent = "file_open"
	IntentAppOpen        Intent = "app_open"
	IntentWebSearch      Intent = "web_search"
	IntentWeatherCheck   Intent = "weather_check"
	IntentTimerSet       Intent = "timer_set"
	IntentReminderSet    Intent = "reminder_set"
	IntentLLMChat        Intent = "llm_chat"
	IntentSystemControl  Intent = "system_control"
	IntentUnknown        Intent = "unknown"
)

// intentDescriptions maps each supported intent to a human-readable label.
var intentDescriptions = map[Intent]string{
	IntentScheduleCheck:  "일정 확인",
	IntentScheduleAdd:    "일정 추가",
	IntentScheduleDelete: "일정 삭제",
	IntentScheduleUpdate: "일정 수정",
	IntentEmailCheck:     "이메일 확인",
	IntentEmailSend:      "이메일 전송",
	IntentFileSearch:     "파일 검색",
	IntentFileOpen:       "파일 열기",
	IntentAppOpen:        "앱 실행",
	IntentWebSearch:      "웹 검색",
	IntentWeatherCheck:   "날씨 확인",
	IntentTimerSet:       "타이머 설정",
	IntentReminderSet:    "리마인더 설정",
	IntentLLMChat:        "일반 대화/질문",
	IntentSystemControl:  "시스템 제어",
	IntentUnknown:        "알 수 없음",
}

// Description returns the human-readable label for the intent.
func (i Intent) Description() string {
	if desc, ok := intentDescriptions[i]; ok {
		return desc
	}
	return string(IntentUnknown)
}

// SupportedIntents returns all intents the classifier can produce.
func SupportedIntents() []Intent {
	intents := make([]Intent, 0, len(intentDescriptions))
	for _, rule := range ruleTable {
		intents = append(intents, rule.intent)
	}
	intents = append(intents, IntentLLMChat, IntentUnknown)
	return intents
}

// Match is the result of a single classification call.
type Match struct {
	Intent     Intent  `json:"intent"`
	Confidence float32 `json:"confidence"`
}

// Classifier classifies user intent from input text.
// The rule-based implementation is the default; alternative implementations
// (e.g. an LLM-backed classifier) are interchangeable behind this interface
// and selected by the caller at construction time.
type Classifier interface {
	Classify(ctx context.Context, text string) (Match, error)
}
