package intent

import (
	"encoding/json"
	"fmt"
	"os"

	"study-assistant/pkg/vntext"
)

// Definition describes one configurable intent for the rule scorer and the
// LLM prompt.
type Definition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	KeywordsAny []string `json:"keywords_any"`
	Required    []string `json:"required,omitempty"`
	Excluded    []string `json:"excluded,omitempty"`
	Priority    int      `json:"priority,omitempty"`
}

// Config is the static intent configuration. Loaded once at process start and
// never mutated afterwards; inject it, do not re-read.
type Config struct {
	DefaultIntent string       `json:"default_intent"`
	MinScore      int          `json:"min_score"`
	Intents       []Definition `json:"intents"`
}

// LoadConfig reads and validates the intent configuration file.
// Keywords are pre-folded so the rule scorer can match against normalized text.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intent config %q: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse intent config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.foldKeywords()
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DefaultIntent == "" {
		return fmt.Errorf("intent config: default_intent is required")
	}
	if len(c.Intents) == 0 {
		return fmt.Errorf("intent config: at least one intent is required")
	}
	seen := make(map[string]bool, len(c.Intents))
	for i, def := range c.Intents {
		if def.Name == "" {
			return fmt.Errorf("intent config: intent %d has no name", i)
		}
		if seen[def.Name] {
			return fmt.Errorf("intent config: duplicate intent %q", def.Name)
		}
		seen[def.Name] = true
		if len(def.KeywordsAny) == 0 {
			return fmt.Errorf("intent config: intent %q has no keywords_any", def.Name)
		}
	}
	return nil
}

// foldKeywords normalizes every configured keyword the same way user text is
// normalized, so matching is plain ASCII substring work.
func (c *Config) foldKeywords() {
	for i := range c.Intents {
		c.Intents[i].KeywordsAny = normalizeAll(c.Intents[i].KeywordsAny)
		c.Intents[i].Required = normalizeAll(c.Intents[i].Required)
		c.Intents[i].Excluded = normalizeAll(c.Intents[i].Excluded)
	}
}

func normalizeAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, vntext.Normalize(kw))
	}
	return out
}
