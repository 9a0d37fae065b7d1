package models

// ChatMessage is a single turn of the conversation as supplied by the client.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the inbound turn: the full message history plus an opaque,
// client-authored context bag (cart, selected slot). The engine never mutates
// or persists it; state is reconstructed from it on every call.
type ChatRequest struct {
	Messages []ChatMessage  `json:"messages"`
	Context  map[string]any `json:"context"`
}

// QuickReply is a tappable suggestion rendered under the assistant reply.
type QuickReply struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChatResponse is the resolved assistant turn.
//
// Actions keys form a fixed open vocabulary: "recommend", "askAddOns",
// "showTimes", "suggestedSlot", "selectedSlot", "navigate". Every service or
// add-on id emitted here must exist in the catalog at call time.
type ChatResponse struct {
	Reply        string         `json:"reply"`
	QuickReplies []QuickReply   `json:"quickReplies"`
	Actions      map[string]any `json:"actions"`
}

// Recommendation points at a catalog service with a relevance score.
type Recommendation struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// AddOnOption is one entry of an askAddOns prompt, priced from the catalog.
type AddOnOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// SessionContext is the ephemeral per-turn state derived from
// ChatRequest.Context. It is recomputed at the start of every call and
// discarded at the end; nothing here survives across turns.
type SessionContext struct {
	Subtotal int
	Date     string
	Time     string
}
