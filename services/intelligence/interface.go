package ai

import (
	"context"

	"salesbot/models"
)

// Generator turns a chat history into schema-constrained JSON text from an
// upstream generative model. Implementations must always return renderable
// turn-response JSON, even on failure, so callers need no error path.
type Generator interface {
	ChatJSON(ctx context.Context, systemInstruction string, history []models.ChatMessage, temperature float64, responseSchema map[string]any) string
}
