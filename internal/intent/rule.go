package intent

import (
	"context"
	"strings"

	"study-assistant/pkg/log"
	"study-assistant/pkg/vntext"
)

// RuleScorer is the deterministic keyword/priority classifier. It runs over
// normalized (folded, lowercased) text with plain substring matching.
type RuleScorer struct {
	cfg *Config
	l   log.Logger
}

// NewRuleScorer creates a new rule scorer over the static intent config.
func NewRuleScorer(cfg *Config, l log.Logger) *RuleScorer {
	return &RuleScorer{cfg: cfg, l: l}
}

// Classify scores every configured intent and returns the winner. Ties break
// by declaration order. When every intent scores zero the configured default
// intent wins with zero confidence.
//
// Note: cfg.MinScore is carried in the config but deliberately NOT enforced
// as a floor here, matching the behavior this scorer was ported from.
func (s *RuleScorer) Classify(ctx context.Context, text string) Result {
	norm := vntext.Normalize(text)

	bestName := s.cfg.DefaultIntent
	bestScore := 0
	for _, def := range s.cfg.Intents {
		score := s.score(norm, def)
		if score > bestScore {
			bestScore = score
			bestName = def.Name
		}
	}

	confidence := 0.0
	if bestScore > 0 {
		confidence = float64(bestScore) / float64(ruleMaxScore)
		if confidence > 0.95 {
			confidence = 0.95
		}
	}

	s.l.Debugf(ctx, "%s: %q -> %s (score=%d)", LogPrefixRule, norm, bestName, bestScore)
	return Result{Name: bestName, Confidence: confidence, Source: SourceRule}
}

// score computes the keyword score for one intent definition.
//
// Ported as-is from the source system, including its inverted handling of
// `required`: the PRESENCE of a required keyword zeroes the score, not its
// absence. That reads like a latent bug upstream, but the behavior is kept
// (and pinned by a test) until product intent says otherwise.
func (s *RuleScorer) score(norm string, def Definition) int {
	for _, kw := range def.Excluded {
		if kw != "" && strings.Contains(norm, kw) {
			return 0
		}
	}

	if len(def.Required) > 0 && containsAny(norm, def.Required) {
		return 0
	}

	matches := 0
	for _, kw := range def.KeywordsAny {
		if kw != "" && strings.Contains(norm, kw) {
			matches++
		}
	}
	if matches == 0 {
		return 0
	}
	return matches + def.Priority
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
