package intent

// Canonical intent names, the closed set downstream consumers see.
const (
	IntentAddEvent   = "add_event"
	IntentCreateTask = "create_task"
	IntentFindEvent  = "find_event"
	IntentUnknown    = "unknown"
	IntentError      = "error"
)

// Source says which classifier produced a result.
type Source string

const (
	SourceRule Source = "rule"
	SourceLLM  Source = "llm"
)

// Result is one classifier's answer for a message.
type Result struct {
	Name       string
	Confidence float64 // 0..1
	Source     Source
	Reasoning  string // optional, LLM only
}

// llmOutput is the structured response expected inside the tagged block of an
// LLM completion.
type llmOutput struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
