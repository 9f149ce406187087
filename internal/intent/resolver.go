package intent

import (
	"context"

	"study-assistant/pkg/log"
)

// canonicalNames maps raw intent labels (from config or from the model) onto
// the closed intent set downstream consumers understand.
var canonicalNames = map[string]string{
	IntentAddEvent:   IntentAddEvent,
	IntentCreateTask: IntentCreateTask,
	IntentFindEvent:  IntentFindEvent,
	IntentUnknown:    IntentUnknown,
	IntentError:      IntentError,

	// Aliases seen from older configs and loose model output.
	"create_event": IntentAddEvent,
	"new_event":    IntentAddEvent,
	"add_task":     IntentCreateTask,
	"new_task":     IntentCreateTask,
	"search_event": IntentFindEvent,
	"query_event":  IntentFindEvent,
}

// Canonicalize maps a raw intent label to the closed set. Labels with no
// mapping collapse to unknown.
func Canonicalize(name string) string {
	if canonical, ok := canonicalNames[name]; ok {
		return canonical
	}
	return IntentUnknown
}

// Classifier is anything that can produce an intent Result for a message.
// Both the LLM classifier and the rule scorer implement it.
type Classifier interface {
	Classify(ctx context.Context, text string) Result
}

// Resolver combines the LLM classifier with the rule scorer under a
// confidence policy: the LLM result is accepted when it is not the default
// intent and clears the confidence threshold, otherwise the rule winner is
// taken (even when that winner is itself the default).
type Resolver struct {
	llm   Classifier
	rules Classifier
	cfg   *Config
	l     log.Logger
}

// NewResolver creates a resolver over the two classifiers. llm may be nil,
// which routes everything through the rule scorer.
func NewResolver(llm, rules Classifier, cfg *Config, l log.Logger) *Resolver {
	return &Resolver{llm: llm, rules: rules, cfg: cfg, l: l}
}

// Resolve classifies the message and returns a result whose Name is always a
// member of the closed canonical set.
func (r *Resolver) Resolve(ctx context.Context, text string) Result {
	if r.llm != nil {
		llmRes := r.llm.Classify(ctx, text)
		if llmRes.Name != r.cfg.DefaultIntent && llmRes.Confidence >= ConfidenceThreshold {
			llmRes.Name = Canonicalize(llmRes.Name)
			r.l.Infof(ctx, "%s: accepted LLM intent %s (%.2f)", LogPrefixResolve, llmRes.Name, llmRes.Confidence)
			return llmRes
		}
	}

	ruleRes := r.rules.Classify(ctx, text)
	ruleRes.Name = Canonicalize(ruleRes.Name)
	r.l.Infof(ctx, "%s: fell back to rule intent %s (%.2f)", LogPrefixResolve, ruleRes.Name, ruleRes.Confidence)
	return ruleRes
}
