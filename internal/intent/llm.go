package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"study-assistant/pkg/gemini"
	"study-assistant/pkg/log"
)

// LLMClassifier delegates intent classification to an external completion
// endpoint. It never fails outward: API errors, empty responses, and
// malformed output all degrade to the configured default intent with zero
// confidence.
type LLMClassifier struct {
	llm gemini.IGemini
	cfg *Config
	l   log.Logger
}

// NewLLMClassifier creates an LLM-backed classifier.
func NewLLMClassifier(llm gemini.IGemini, cfg *Config, l log.Logger) *LLMClassifier {
	return &LLMClassifier{llm: llm, cfg: cfg, l: l}
}

// Classify asks the completion endpoint for an intent.
func (c *LLMClassifier) Classify(ctx context.Context, text string) Result {
	prompt := fmt.Sprintf(PromptClassifySystem, c.intentCatalog(), text)

	resp, err := c.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{Temperature: LLMTemperature},
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixLLM, ReasonCallFailed, err)
		return c.fallback(ReasonCallFailed)
	}

	raw := strings.TrimSpace(resp.Text())
	if raw == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixLLM, ReasonEmptyResponse)
		return c.fallback(ReasonEmptyResponse)
	}

	out, ok := parseTaggedResult(raw)
	if !ok {
		c.l.Warnf(ctx, "%s: %s: %q", LogPrefixLLM, ReasonParseError, raw)
		return c.fallback(ReasonParseError)
	}

	// Some models answer on a 0-100 scale despite the prompt.
	confidence := out.Confidence
	if confidence > 1 {
		confidence /= 100
	}

	c.l.Infof(ctx, "%s: classified as %s (confidence=%.2f)", LogPrefixLLM, out.Intent, confidence)
	return Result{
		Name:       out.Intent,
		Confidence: confidence,
		Source:     SourceLLM,
		Reasoning:  out.Reasoning,
	}
}

func (c *LLMClassifier) fallback(reason string) Result {
	return Result{
		Name:       c.cfg.DefaultIntent,
		Confidence: 0,
		Source:     SourceLLM,
		Reasoning:  reason,
	}
}

// intentCatalog renders the configured intents as a numbered prompt section.
func (c *LLMClassifier) intentCatalog() string {
	var sb strings.Builder
	for i, def := range c.cfg.Intents {
		fmt.Fprintf(&sb, "%d. %s: %s\n", i+1, def.Name, def.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// parseTaggedResult extracts the JSON object between the result delimiter
// tags. Markdown fences around the tags are tolerated; a response with no
// tags but a bare JSON object is accepted as a last resort.
func parseTaggedResult(raw string) (llmOutput, bool) {
	body := raw
	if open := strings.Index(raw, ResultTagOpen); open >= 0 {
		body = raw[open+len(ResultTagOpen):]
		if close := strings.Index(body, ResultTagClose); close >= 0 {
			body = body[:close]
		}
	} else {
		start := strings.Index(body, "{")
		end := strings.LastIndex(body, "}")
		if start == -1 || end <= start {
			return llmOutput{}, false
		}
		body = body[start : end+1]
	}

	var out llmOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &out); err != nil {
		return llmOutput{}, false
	}
	if out.Intent == "" {
		return llmOutput{}, false
	}
	return out, true
}
