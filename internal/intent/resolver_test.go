package intent_test

import (
	"context"
	"testing"

	"study-assistant/internal/intent"
)

type stubClassifier struct {
	result intent.Result
	called bool
}

func (s *stubClassifier) Classify(ctx context.Context, text string) intent.Result {
	s.called = true
	return s.result
}

func TestResolverPolicy(t *testing.T) {
	cfg := testConfig()
	ctx := context.Background()

	tests := []struct {
		name         string
		llm          intent.Result
		rule         intent.Result
		want         string
		wantRuleUsed bool
	}{
		{
			name: "Confident non-default LLM result accepted",
			llm:  intent.Result{Name: "add_event", Confidence: 0.9, Source: intent.SourceLLM},
			rule: intent.Result{Name: "create_task", Confidence: 0.5, Source: intent.SourceRule},
			want: intent.IntentAddEvent,
		},
		{
			name:         "Low confidence LLM falls through to rules",
			llm:          intent.Result{Name: "add_event", Confidence: 0.5, Source: intent.SourceLLM},
			rule:         intent.Result{Name: "create_task", Confidence: 0.4, Source: intent.SourceRule},
			want:         intent.IntentCreateTask,
			wantRuleUsed: true,
		},
		{
			name:         "Default LLM intent falls through even when confident",
			llm:          intent.Result{Name: intent.IntentUnknown, Confidence: 0.99, Source: intent.SourceLLM},
			rule:         intent.Result{Name: "find_event", Confidence: 0.3, Source: intent.SourceRule},
			want:         intent.IntentFindEvent,
			wantRuleUsed: true,
		},
		{
			name:         "Rule default accepted as final answer",
			llm:          intent.Result{Name: intent.IntentUnknown, Confidence: 0, Source: intent.SourceLLM},
			rule:         intent.Result{Name: intent.IntentUnknown, Confidence: 0, Source: intent.SourceRule},
			want:         intent.IntentUnknown,
			wantRuleUsed: true,
		},
		{
			name: "Alias labels canonicalized",
			llm:  intent.Result{Name: "create_event", Confidence: 0.95, Source: intent.SourceLLM},
			rule: intent.Result{Name: intent.IntentUnknown, Source: intent.SourceRule},
			want: intent.IntentAddEvent,
		},
		{
			name: "Labels outside the closed set collapse to unknown",
			llm:  intent.Result{Name: "order_pizza", Confidence: 0.99, Source: intent.SourceLLM},
			rule: intent.Result{Name: intent.IntentUnknown, Source: intent.SourceRule},
			want: intent.IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &stubClassifier{result: tt.llm}
			rule := &stubClassifier{result: tt.rule}
			resolver := intent.NewResolver(llm, rule, cfg, nopLogger{})

			got := resolver.Resolve(ctx, "tin nhắn")
			if got.Name != tt.want {
				t.Errorf("Resolve() = %s, want %s", got.Name, tt.want)
			}
			if rule.called != tt.wantRuleUsed {
				t.Errorf("rule scorer called = %v, want %v", rule.called, tt.wantRuleUsed)
			}
		})
	}
}
