// Package entity provides typed entity extraction from user utterances.
package entity

import "regexp"

// Kind is the type of an extracted entity.
type Kind string

const (
	KindTime     Kind = "time"
	KindDate     Kind = "date"
	KindDuration Kind = "duration"
	KindPerson   Kind = "person"
	KindAppName  Kind = "app_name"
	KindFileName Kind = "file_name"
)

// Entity is a typed span over the original text. Start and End are byte
// offsets into the input, with 0 <= Start < End <= len(text).
type Entity struct {
	Kind  Kind   `json:"type"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// patternRule binds an entity kind to its ordered match patterns.
type patternRule struct {
	kind     Kind
	patterns []*regexp.Regexp
}

// patternTable holds the per-kind extraction patterns, compiled once at
// package init. Rule order is the emission order; spans from different kinds
// may overlap on purpose so a downstream consumer can pick the most specific
// interpretation.
var patternTable = []patternRule{
	{KindTime, compileAll(
		`(?i)(\d{1,2}시\s*\d{0,2}분?|\d{1,2}:\d{2}|오전\s*\d{1,2}시|오후\s*\d{1,2}시)`,
	)},
	{KindDate, compileAll(
		`(?i)(오늘|내일|모레|\d{1,2}월\s*\d{1,2}일|다음\s*주|이번\s*주)`,
	)},
	{KindDuration, compileAll(
		`(?i)(\d+\s*(분|시간|초))`,
	)},
	{KindPerson, compileAll(
		`(?i)([가-힣]{2,4}(?:씨|님|에게))`,
	)},
	{KindAppName, compileAll(
		`(?i)(크롬|브라우저|메모장|계산기|엑셀|워드|파워포인트|비주얼\s*스튜디오)`,
	)},
	{KindFileName, compileAll(
		`(?i)([가-힣a-zA-Z0-9_]+\.(txt|pdf|doc|docx|xlsx|pptx|py|js))`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// Extractor scans raw text for typed entity spans. It is stateless over the
// package-level pattern table and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates an entity extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract applies every pattern rule against the full input and emits one
// entity per match occurrence, preserving table order and, within a pattern,
// left-to-right match order. An input with no matches returns an empty slice.
func (e *Extractor) Extract(text string) []Entity {
	entities := []Entity{}

	for _, rule := range patternTable {
		for _, pattern := range rule.patterns {
			for _, loc := range pattern.FindAllStringIndex(text, -1) {
				entities = append(entities, Entity{
					Kind:  rule.kind,
					Value: text[loc[0]:loc[1]],
					Start: loc[0],
					End:   loc[1],
				})
			}
		}
	}

	return entities
}

// First returns the first extracted entity of the given kind, if any.
// Downstream consumers rely on first-match semantics instead of global
// overlap resolution.
func First(entities []Entity, kind Kind) (Entity, bool) {
	for _, ent := range entities {
		if ent.Kind == kind {
			return ent, true
		}
	}
	return Entity{}, false
}
