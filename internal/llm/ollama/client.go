package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joseph-ayodele/scan-extractor/constants"
	"github.com/joseph-ayodele/scan-extractor/internal/llm"
)

var chatSchema = llm.BuildChatResponseSchema()

// Analyze implements llm.Analyzer. Every failure collapses into
// constants.ModelErrorSentinel; the cause is only logged.
func (c *Client) Analyze(ctx context.Context, prompt string) string {
	reply, err := c.Chat(ctx, prompt)
	if err != nil {
		return constants.ModelErrorSentinel
	}
	return reply
}

// Chat sends prompt as a single user turn and returns message.content.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	c.log.Info("llm.chat.start",
		"model", c.cfg.Model,
		"endpoint", c.cfg.Endpoint,
		"prompt_len", len(prompt),
	)

	body := llm.ChatRequest{
		Model: c.cfg.Model,
		Messages: []llm.ChatMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
	}

	raw, status, err := llm.SendJSON(ctx, c.httpClient, c.cfg.Endpoint, body, nil, c.log)
	if err != nil {
		c.log.Error("llm.chat.http_error",
			"error", err, "status", status,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("ollama chat: %w", err)
	}

	if err := llm.ValidateJSONAgainstSchema(chatSchema, raw); err != nil {
		c.log.Error("llm.chat.schema_validation_failed",
			"error", err, "raw", truncate(string(raw), 512),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("ollama response: %w", err)
	}

	var out llm.ChatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Error("llm.chat.decode_error",
			"error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	c.log.Info("llm.chat.ok",
		"model", c.cfg.Model,
		"reply_len", len(out.Message.Content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
