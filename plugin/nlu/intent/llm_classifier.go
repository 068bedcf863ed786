package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// LLMConfig holds the configuration for the LLM-backed classifier.
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
}

// DefaultLLMConfig returns the default LLM classifier configuration.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		BaseURL:     "https://api.openai.com/v1",
		Model:       "gpt-4o-mini",
		MaxTokens:   256,
		Temperature: 0.1,
	}
}

// classificationPrompt asks the model for a JSON-only intent verdict.
const classificationPrompt = `당신은 개인 비서의 의도 분류기입니다. 사용자 입력을 분석하여 의도를 판단하세요.

가능한 의도:
- schedule_check: 일정 확인
- schedule_add: 일정 추가
- schedule_delete: 일정 삭제
- schedule_update: 일정 수정
- email_check: 이메일 확인
- email_send: 이메일 전송
- file_search: 파일 검색
- file_open: 파일 열기
- app_open: 앱 실행
- web_search: 웹 검색
- weather_check: 날씨 확인
- timer_set: 타이머 설정
- reminder_set: 리마인더 설정
- llm_chat: 일반 대화/질문
- system_control: 시스템 제어
- unknown: 분류 불가

사용자 입력: %s

다음 필드를 가진 JSON만 출력하세요:
- intent: 의도 이름 (위 목록 중 하나)
- confidence: 신뢰도 (0~1 사이 소수)

JSON 외의 다른 내용은 출력하지 마세요.`

// LLMClassifier classifies intent with a chat-completion model. It is an
// optional replacement for RuleClassifier behind the same interface; unlike
// the rule path it performs network I/O, so callers own timeouts via ctx.
type LLMClassifier struct {
	client              *openai.Client
	config              *LLMConfig
	confidenceThreshold float32
}

// NewLLMClassifier creates an LLM-backed classifier.
func NewLLMClassifier(cfg *LLMConfig) *LLMClassifier {
	if cfg == nil {
		cfg = DefaultLLMConfig()
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 256
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &LLMClassifier{
		client:              openai.NewClientWithConfig(clientConfig),
		config:              cfg,
		confidenceThreshold: 0.7,
	}
}

// Classify sends the input to the model and parses the JSON verdict.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (Match, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(classificationPrompt, text),
			},
		},
	})
	if err != nil {
		return Match{Intent: IntentUnknown}, fmt.Errorf("llm classification failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Match{Intent: IntentUnknown}, fmt.Errorf("llm classification returned no choices")
	}

	match, err := parseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		return Match{Intent: IntentUnknown}, err
	}

	// Low-certainty verdicts are downgraded rather than trusted.
	if match.Confidence < c.confidenceThreshold {
		match.Intent = IntentUnknown
	}

	return match, nil
}

// llmVerdict is the expected JSON structure from the model.
type llmVerdict struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// parseVerdict parses the model output, tolerating markdown code fences.
func parseVerdict(response string) (Match, error) {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```json")
		response = strings.TrimPrefix(response, "```")
		if idx := strings.LastIndex(response, "```"); idx >= 0 {
			response = response[:idx]
		}
		response = strings.TrimSpace(response)
	}

	var verdict llmVerdict
	if err := json.Unmarshal([]byte(response), &verdict); err != nil {
		return Match{}, fmt.Errorf("failed to parse llm verdict: %w", err)
	}

	name := Intent(strings.TrimSpace(verdict.Intent))
	if _, ok := intentDescriptions[name]; !ok {
		name = IntentUnknown
	}

	confidence := float32(verdict.Confidence)
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return Match{Intent: name, Confidence: confidence}, nil
}

var _ Classifier = (*LLMClassifier)(nil)
