package model

import "time"

// Roles a message can carry. The upstream API uses its own role vocabulary
// ("user"/"model"); the mapping happens at the llm boundary.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single exchange entry in a conversation.
// Immutable once appended.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a persisted thread of alternating user/assistant messages
// bound to one model and one personality. The live upstream chat session is
// transient runtime state owned by the orchestrator and is never serialized.
type Conversation struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Model       string    `json:"model"`
	Personality string    `json:"personality"`
	Messages    []Message `json:"messages"`
}

// ConversationSummary is the listing view of a conversation.
type ConversationSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	Preview      string    `json:"preview"`
	Model        string    `json:"model"`
	Personality  string    `json:"personality"`
}

// Descriptor describes one upstream model in the catalog.
// Read-only after catalog construction.
type Descriptor struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	ContextWindow     int    `json:"context_window"`
	SupportsStreaming bool   `json:"supports_streaming"`
	SupportsVision    bool   `json:"supports_vision"`
}

// Usage is the token accounting reported by the upstream for one exchange.
// All fields are zero when the upstream reports nothing.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// StreamEvent is one frame of the server-sent event stream. Exactly one of
// the three shapes is populated per event: {chunk}, {done, full_response}
// or {error}. FullResponse is a pointer so a done frame carries the field
// even when the accumulated reply is empty.
type StreamEvent struct {
	Chunk        string  `json:"chunk,omitempty"`
	Done         bool    `json:"done,omitempty"`
	FullResponse *string `json:"full_response,omitempty"`
	Error        string  `json:"error,omitempty"`
}
