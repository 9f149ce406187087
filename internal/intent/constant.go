package intent

// Log prefixes
const (
	LogPrefixRule    = "internal.intent.RuleScorer"
	LogPrefixLLM     = "internal.intent.LLMClassifier"
	LogPrefixResolve = "internal.intent.Resolver"
)

// Classifier configuration
const (
	// ConfidenceThreshold: LLM results below this fall through to the rule scorer.
	ConfidenceThreshold = 0.7

	// LLMTemperature keeps classification output deterministic.
	LLMTemperature = 0.1

	// ruleMaxScore is the score treated as full confidence by the rule scorer.
	ruleMaxScore = 6

	// Response delimiter tags. The completion endpoint must wrap its JSON
	// object in exactly these.
	ResultTagOpen  = "<result>"
	ResultTagClose = "</result>"
)

// PromptClassifySystem enumerates the allowed intents for the completion
// endpoint. Filled with the intent list built from config, then the message.
const PromptClassifySystem = `Bạn là bộ phân loại ý định cho trợ lý lịch học. Phân tích tin nhắn của người dùng và xác định ý định (intent).

Các intent hợp lệ:
%s

Trả về DUY NHẤT một object JSON, bọc trong thẻ ` + ResultTagOpen + ` và ` + ResultTagClose + `:
` + ResultTagOpen + `{"intent": "<tên intent>", "confidence": <0..1>, "reasoning": "<giải thích ngắn>"}` + ResultTagClose + `

Tin nhắn: "%s"`

// Fallback reasons
const (
	ReasonEmptyResponse = "empty completion response"
	ReasonParseError    = "unparseable completion response"
	ReasonCallFailed    = "completion call failed"
)
