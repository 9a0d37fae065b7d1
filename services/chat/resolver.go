package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"salesbot/catalog"
	"salesbot/models"

	"go.uber.org/zap"
)

const maxQuickReplies = 6

// DefaultChatService is the turn resolver. It classifies the latest user
// utterance, re-derives the session state from the client context and branches
// deterministically; only unmatched utterances reach the Gemini gateway, and
// whatever comes back is sanitized against the catalog before leaving.
type DefaultChatService struct {
	Catalog    *catalog.Catalog
	Classifier *Classifier
	Gemini     Generator
	Scheduler  Scheduler
	Logger     *zap.Logger
}

func NewDefaultChatService(cat *catalog.Catalog, gemini Generator, scheduler Scheduler, logger *zap.Logger) *DefaultChatService {
	return &DefaultChatService{
		Catalog:    cat,
		Classifier: &Classifier{Catalog: cat},
		Gemini:     gemini,
		Scheduler:  scheduler,
		Logger:     logger,
	}
}

// Resolve produces the next assistant turn for the given conversation.
func (s *DefaultChatService) Resolve(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	lastUser := lastUserUtterance(req.Messages)
	intent, serviceID := s.Classifier.Classify(lastUser)

	switch intent {
	case IntentServicesList:
		if strings.Contains(normalize(lastUser), "tell me more") {
			return s.askWhichService()
		}
		return models.ChatResponse{
			Reply:        "Here are the services we currently offer.",
			QuickReplies: s.serviceQuickReplies(),
			Actions:      map[string]any{"recommend": s.recommendAll()},
		}

	case IntentServiceMention:
		return s.offerAddOns(serviceID)

	case IntentContinue:
		sc := ParseSessionContext(req.Context, s.Catalog)
		return models.ChatResponse{
			Reply: fmt.Sprintf("Your current subtotal is **LKR %d**. Want me to suggest the next available time, or pick a different slot?", sc.Subtotal),
			QuickReplies: []models.QuickReply{
				{Label: "Suggest a time", Value: "suggest time"},
				{Label: "Pick a different time", Value: "change time"},
			},
			Actions: map[string]any{"showTimes": true},
		}

	case IntentSuggestTime:
		return s.suggestTime()

	case IntentConfirmTime:
		return s.confirmTime(req)

	case IntentChangeTime:
		return models.ChatResponse{
			Reply:        "No problem — I’ve opened the booking page. Pick a slot and then choose **Confirm booking** here.",
			QuickReplies: []models.QuickReply{{Label: "Back to chat", Value: "continue"}},
			Actions:      map[string]any{"navigate": "/booking"},
		}

	case IntentConfirmBooking:
		sc := ParseSessionContext(req.Context, s.Catalog)
		when := strings.TrimSpace(strings.TrimSpace(sc.Date) + " " + strings.TrimSpace(sc.Time))
		if when == "" {
			when = "the chosen slot"
		}
		return models.ChatResponse{
			Reply:        fmt.Sprintf("Awesome! I’ve confirmed your booking for **%s**. Total due: **LKR %d**. Redirecting to billing…", when, sc.Subtotal),
			QuickReplies: []models.QuickReply{},
			Actions:      map[string]any{"navigate": "/billing"},
		}

	default:
		return s.resolveWithGemini(ctx, req)
	}
}

func (s *DefaultChatService) suggestTime() models.ChatResponse {
	slot := s.Scheduler.SuggestNextSlot()

	suggested := map[string]any{"date": slot.Date}
	pretty := slot.Date
	if slot.Time != "" {
		suggested["time"] = slot.Time
		pretty = slot.Date + " at " + slot.Time
	}
	if pretty == "" {
		pretty = "the next available slot"
	}

	return models.ChatResponse{
		Reply: fmt.Sprintf("How about **%s**? Shall I confirm this time?", pretty),
		QuickReplies: []models.QuickReply{
			{Label: "Confirm time", Value: "confirm time"},
			{Label: "Change time", Value: "change time"},
		},
		Actions: map[string]any{"suggestedSlot": suggested},
	}
}

// confirmTime promotes the suggested slot to the selected slot and reports the
// running price. The caller's context map is copied, never mutated.
func (s *DefaultChatService) confirmTime(req models.ChatRequest) models.ChatResponse {
	ctx := make(map[string]any, len(req.Context)+1)
	for k, v := range req.Context {
		ctx[k] = v
	}
	if suggested, ok := ctx["suggestedSlot"]; ok && suggested != nil {
		ctx["selectedSlot"] = suggested
	}

	sc := ParseSessionContext(ctx, s.Catalog)
	pretty := "the next available slot"
	switch {
	case sc.Date != "" && sc.Time != "":
		pretty = sc.Date + " at " + sc.Time
	case sc.Date != "":
		pretty = sc.Date
	case sc.Time != "":
		pretty = sc.Time
	}

	actions := map[string]any{}
	if selected, ok := ctx["selectedSlot"]; ok && selected != nil {
		actions["selectedSlot"] = selected
	}

	return models.ChatResponse{
		Reply: fmt.Sprintf("Great! I’ve selected **%s**. Ready to confirm your booking for **LKR %d**?", pretty, sc.Subtotal),
		QuickReplies: []models.QuickReply{
			{Label: "Confirm booking", Value: "confirm booking"},
			{Label: "Change time", Value: "change time"},
		},
		Actions: actions,
	}
}

// resolveWithGemini delegates the turn to the LLM gateway and grounds the
// result: unknown recommend ids are dropped, askAddOns options are always
// rebuilt from the catalog, and unparseable output degrades to the full
// service list.
func (s *DefaultChatService) resolveWithGemini(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	system := BuildSystemInstruction(s.Catalog)
	text := s.Gemini.ChatJSON(ctx, system, req.Messages, 0.4, ResponseSchema())

	var turn struct {
		Reply        string              `json:"reply"`
		QuickReplies []models.QuickReply `json:"quickReplies"`
		Actions      struct {
			Recommend []struct {
				ID    string   `json:"id"`
				Score *float64 `json:"score"`
			} `json:"recommend"`
			AskAddOns *struct {
				ServiceID string `json:"serviceId"`
			} `json:"askAddOns"`
		} `json:"actions"`
	}
	if err := json.Unmarshal([]byte(text), &turn); err != nil {
		s.Logger.Warn("chat: unparseable model output, falling back to service list", zap.Error(err))
		return s.fallbackServiceList()
	}

	reply := turn.Reply
	if reply == "" {
		reply = "OK"
	}

	quick := make([]models.QuickReply, 0, len(turn.QuickReplies))
	for _, q := range turn.QuickReplies {
		if strings.TrimSpace(q.Label) != "" && strings.TrimSpace(q.Value) != "" {
			quick = append(quick, q)
		}
	}

	actions := map[string]any{}

	recs := make([]map[string]any, 0, len(turn.Actions.Recommend))
	for _, r := range turn.Actions.Recommend {
		if !s.Catalog.HasService(r.ID) {
			continue
		}
		one := map[string]any{"id": r.ID}
		if r.Score != nil {
			one["score"] = *r.Score
		}
		recs = append(recs, one)
	}
	if len(recs) > 0 {
		actions["recommend"] = recs
	}

	if ask := turn.Actions.AskAddOns; ask != nil && s.Catalog.HasService(ask.ServiceID) {
		if options := s.Catalog.AddOnOptions(ask.ServiceID); len(options) > 0 {
			actions["askAddOns"] = map[string]any{
				"serviceId": ask.ServiceID,
				"options":   options,
			}
		}
	}

	return models.ChatResponse{Reply: reply, QuickReplies: quick, Actions: actions}
}

func (s *DefaultChatService) offerAddOns(serviceID string) models.ChatResponse {
	svc, ok := s.Catalog.ServiceByID(serviceID)
	if !ok {
		return s.askWhichService()
	}

	actions := map[string]any{
		"recommend": []models.Recommendation{{ID: svc.ID, Score: 1.0}},
	}
	options := s.Catalog.AddOnOptions(svc.ID)
	if len(options) > 0 {
		actions["askAddOns"] = map[string]any{
			"serviceId": svc.ID,
			"options":   options,
		}
	}

	quick := make([]models.QuickReply, 0, 2)
	if len(options) > 0 {
		quick = append(quick, models.QuickReply{Label: "Add add-ons", Value: "add-ons"})
	}
	quick = append(quick, models.QuickReply{Label: "Continue", Value: "continue"})

	return models.ChatResponse{
		Reply:        fmt.Sprintf("Great choice! Do you want to add any add-ons for **%s**?", svc.Name),
		QuickReplies: quick,
		Actions:      actions,
	}
}

func (s *DefaultChatService) askWhichService() models.ChatResponse {
	return models.ChatResponse{
		Reply:        "Sure — which service are you interested in?",
		QuickReplies: s.serviceQuickReplies(),
		Actions:      map[string]any{"recommend": s.recommendAll()},
	}
}

func (s *DefaultChatService) fallbackServiceList() models.ChatResponse {
	return models.ChatResponse{
		Reply:        "Here are our available services. Pick one to continue.",
		QuickReplies: s.serviceQuickReplies(),
		Actions:      map[string]any{"recommend": s.recommendAll()},
	}
}

func (s *DefaultChatService) serviceQuickReplies() []models.QuickReply {
	services := s.Catalog.Services()
	quick := make([]models.QuickReply, 0, maxQuickReplies)
	for _, svc := range services {
		if len(quick) == maxQuickReplies {
			break
		}
		quick = append(quick, models.QuickReply{Label: svc.Name, Value: svc.Name})
	}
	return quick
}

func (s *DefaultChatService) recommendAll() []models.Recommendation {
	services := s.Catalog.Services()
	recs := make([]models.Recommendation, 0, len(services))
	for _, svc := range services {
		recs = append(recs, models.Recommendation{ID: svc.ID, Score: 1.0})
	}
	return recs
}

func lastUserUtterance(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if strings.EqualFold(messages[i].Role, "user") {
			return messages[i].Content
		}
	}
	return ""
}
