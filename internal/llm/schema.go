package llm

// BuildChatResponseSchema returns the JSON-Schema (draft 2020-12 subset) a
// /api/chat reply must satisfy before we read message.content from it.
func BuildChatResponseSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"role":    map[string]any{"type": "string"},
					"content": map[string]any{"type": "string"},
				},
				"required": []string{"content"},
			},
		},
		"required": []string{"message"},
	}
}
