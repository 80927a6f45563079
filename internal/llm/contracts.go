package llm

import "context"

// ChatMessage is one turn of an Ollama /api/chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the non-streaming /api/chat request body.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// ChatResponse holds the fields we read from the /api/chat reply.
type ChatResponse struct {
	Model   string      `json:"model,omitempty"`
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done,omitempty"`
}

// Analyzer is the interface our pipeline depends on. Analyze never fails:
// on any transport or protocol problem it returns constants.ModelErrorSentinel.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) string
}
