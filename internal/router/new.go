package router

import (
	"context"

	"calendar-assistant/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string, conversationHistory []string) RouterOutput
}

// KeywordRouter classifies user intent with a ranked keyword table.
type KeywordRouter struct {
	rules     []Rule
	threshold float64
	l         log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter over DefaultRules.
func New(l log.Logger) *KeywordRouter {
	return NewWithRules(l, DefaultRules)
}

// NewWithRules creates a KeywordRouter over a custom rule table, evaluated in order.
func NewWithRules(l log.Logger, rules []Rule) *KeywordRouter {
	return &KeywordRouter{
		rules:     rules,
		threshold: SimilarityThreshold,
		l:         l,
	}
}
