package intent

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// intentRule binds an intent to its keyword patterns. The table is a slice
// because tie-breaking keeps the first-seen intent: map iteration order would
// make classification non-deterministic.
type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// ruleTable holds the per-intent keyword patterns, compiled once at package
// init and never mutated afterward. Patterns are matched against the
// case-folded input.
var ruleTable = []intentRule{
	{IntentScheduleCheck, compileAll(
		`일정`, `스케줄`, `약속`, `오늘\s*뭐`, `언제`,
	)},
	{IntentScheduleAdd, compileAll(
		`일정\s*(추가|등록|잡아)`, `약속\s*(잡아|만들어)`, `(회의|미팅)\s*(잡아|예약|만들)`,
	)},
	{IntentScheduleDelete, compileAll(
		`일정\s*(삭제|취소)`, `약속\s*(취소|삭제)`,
	)},
	{IntentScheduleUpdate, compileAll(
		`일정\s*(변경|수정|바꿔|옮겨)`, `약속\s*(변경|수정)`,
	)},
	{IntentEmailCheck, compileAll(
		`이메일\s*(확인|읽어)`, `메일\s*(확인|읽어)`, `새\s*메일`,
	)},
	{IntentEmailSend, compileAll(
		`이메일\s*(보내|전송)`, `메일\s*(보내|전송)`,
	)},
	{IntentFileSearch, compileAll(
		`파일\s*(찾아|검색)`, `어디.*있`, `폴더`,
	)},
	{IntentFileOpen, compileAll(
		`파일\s*(열어|실행)`, `문서\s*열어`,
	)},
	{IntentAppOpen, compileAll(
		`(실행|열어|켜).*(앱|프로그램|어플)`, `(크롬|브라우저|메모장|계산기)`,
	)},
	{IntentWebSearch, compileAll(
		`검색`, `찾아.*줘`, `알려.*줘`,
	)},
	{IntentWeatherCheck, compileAll(
		`날씨`, `기온`, `비\s*올까`,
	)},
	{IntentTimerSet, compileAll(
		`타이머`, `알람`, `분\s*후`,
	)},
	{IntentReminderSet, compileAll(
		`리마인더`, `알림`, `까먹지`,
	)},
	{IntentSystemControl, compileAll(
		`볼륨`, `음량`, `밝기`, `종료`, `재부팅`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// llmChatMinRunes is the input length above which an unmatched utterance is
// treated as free conversation instead of unknown.
const llmChatMinRunes = 5

// Confidence calibration bounds. Rule matches never report full certainty and
// never report below the routing floor downstream consumers rely on.
const (
	confidenceFloor = 0.3
	confidenceSpan  = 0.6
)

// RuleClassifier is the default rule-based classifier. It is stateless over
// the package-level rule table and safe for concurrent use.
type RuleClassifier struct{}

// NewRuleClassifier creates the rule-based classifier.
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

// Classify scores every intent in the rule table against the case-folded
// input and returns the best match. The returned error is always nil; the
// method keeps the Classifier signature so alternative implementations can
// report transport failures.
func (c *RuleClassifier) Classify(_ context.Context, text string) (Match, error) {
	lower := strings.ToLower(text)

	best := IntentUnknown
	bestScore := 0.0

	for _, rule := range ruleTable {
		matched := 0
		for _, pattern := range rule.patterns {
			if pattern.MatchString(lower) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		score := float64(matched) / float64(len(rule.patterns))
		if score > 1.0 {
			score = 1.0
		}
		// Strictly greater: ties keep the first-seen intent in table order.
		if score > bestScore {
			bestScore = score
			best = rule.intent
		}
	}

	// No pattern matched at all. Long enough inputs are routed to free
	// conversation, everything else stays unknown.
	if best == IntentUnknown && utf8.RuneCountInString(text) > llmChatMinRunes {
		best = IntentLLMChat
		bestScore = 0.5
	}

	confidence := confidenceFloor + float32(bestScore)*confidenceSpan

	return Match{Intent: best, Confidence: confidence}, nil
}

var _ Classifier = (*RuleClassifier)(nil)
