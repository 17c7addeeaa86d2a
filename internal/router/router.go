package router

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"calendar-assistant/pkg/fuzzy"
)

var nonLetterRe = regexp.MustCompile(`[^a-z']+`)

// Classify determines user intent from message. An empty history always yields a greeting.
func (r *KeywordRouter) Classify(ctx context.Context, message string, conversationHistory []string) RouterOutput {
	if len(conversationHistory) == 0 {
		return RouterOutput{
			Intent:     IntentGreeting,
			Confidence: ConfidenceHistory,
			Reasoning:  ReasonEmptyHistory,
		}
	}

	text := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range r.rules {
		if out, ok := r.match(rule, text); ok {
			r.l.Debugf(ctx, "%s: classified as %s (%s)", LogPrefixClassify, out.Intent, out.Reasoning)
			return out
		}
	}

	r.l.Debugf(ctx, "%s: no rule matched %q", LogPrefixClassify, text)
	return RouterOutput{
		Intent:     IntentUnknown,
		Confidence: ConfidenceNone,
		Reasoning:  ReasonNoMatch,
	}
}

func (r *KeywordRouter) match(rule Rule, text string) (RouterOutput, bool) {
	if text == "" {
		return RouterOutput{}, false
	}

	switch rule.Mode {
	case MatchWord:
		for _, kw := range rule.Keywords {
			if containsWord(text, kw) {
				return RouterOutput{
					Intent:     rule.Intent,
					Confidence: ConfidenceExact,
					Reasoning:  fmt.Sprintf(ReasonWord, kw),
					Keyword:    kw,
				}, true
			}
		}
	default:
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return RouterOutput{
					Intent:     rule.Intent,
					Confidence: ConfidenceExact,
					Reasoning:  fmt.Sprintf(ReasonSubstring, kw),
					Keyword:    kw,
				}, true
			}
		}

		best, bestRatio := "", 0.0
		for _, kw := range rule.Keywords {
			if ratio := fuzzy.Ratio(kw, text); ratio > bestRatio {
				best, bestRatio = kw, ratio
			}
		}
		if bestRatio > r.threshold {
			return RouterOutput{
				Intent:     rule.Intent,
				Confidence: int(bestRatio * 100),
				Reasoning:  fmt.Sprintf(ReasonFuzzy, best, bestRatio),
				Keyword:    best,
			}, true
		}
	}
	return RouterOutput{}, false
}

// containsWord reports whether word appears in text bounded by non-letters.
func containsWord(text, word string) bool {
	padded := " " + nonLetterRe.ReplaceAllString(text, " ") + " "
	return strings.Contains(padded, " "+word+" ")
}
