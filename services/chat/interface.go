package chat

import (
	"context"

	"salesbot/models"
)

// ChatService resolves one conversation turn. Every call is independent and
// stateless; the response is fully derived from the supplied history and
// context plus the read-only catalog.
type ChatService interface {
	Resolve(ctx context.Context, req models.ChatRequest) models.ChatResponse
}

// Generator is the LLM gateway collaborator. It returns the raw model text,
// or an error payload already shaped as valid turn-response JSON, so callers
// never need a separate error path.
type Generator interface {
	ChatJSON(ctx context.Context, systemInstruction string, history []models.ChatMessage, temperature float64, responseSchema map[string]any) string
}

// Scheduler is the scheduling collaborator that proposes the next bookable
// appointment slot.
type Scheduler interface {
	SuggestNextSlot() models.TimeSlot
}
