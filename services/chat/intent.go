package chat

import (
	"strings"

	"salesbot/catalog"
)

// Intent is the discrete classification of a user utterance. It drives the
// deterministic branch taken by the turn resolver; IntentNone hands the turn
// to the LLM gateway.
type Intent string

const (
	IntentServicesList   Intent = "services_list"
	IntentServiceMention Intent = "service_mention"
	IntentContinue       Intent = "continue"
	IntentSuggestTime    Intent = "suggest_time"
	IntentConfirmTime    Intent = "confirm_time"
	IntentChangeTime     Intent = "change_time"
	IntentConfirmBooking Intent = "confirm_booking"
	IntentNone           Intent = "none"
)

// Classifier maps free text to an intent via an ordered keyword rule chain
// plus a fuzzy service-name matcher. Pure and stateless.
type Classifier struct {
	Catalog *catalog.Catalog
}

type intentRule struct {
	intent Intent
	match  func(t string) bool
}

// Classify returns the intent of the utterance and, for IntentServiceMention,
// the id of the matched catalog service. Matching is case-insensitive and
// whitespace-normalized. Rules are evaluated in a fixed priority order since
// the intents overlap lexically; the first match wins.
func (cl *Classifier) Classify(utterance string) (Intent, string) {
	t := normalize(utterance)
	if t == "" {
		return IntentNone, ""
	}

	serviceID := cl.fuzzyServiceID(t)

	rules := []intentRule{
		// "tell me more" without a recognizable service name needs a
		// disambiguation prompt, not a fuzzy guess.
		{IntentServicesList, func(t string) bool {
			return strings.Contains(t, "tell me more") && serviceID == ""
		}},
		{IntentServicesList, isExplicitServices},
		{IntentServiceMention, func(t string) bool { return serviceID != "" }},
		{IntentContinue, func(t string) bool {
			return t == "continue" || strings.Contains(t, "go ahead") || strings.Contains(t, "next")
		}},
		{IntentSuggestTime, func(t string) bool {
			return strings.Contains(t, "suggest time") || strings.Contains(t, "recommend a time") || strings.Contains(t, "best time")
		}},
		{IntentConfirmTime, func(t string) bool {
			return t == "confirm time" || strings.Contains(t, "that works") || strings.Contains(t, "sounds good")
		}},
		{IntentChangeTime, func(t string) bool {
			return strings.Contains(t, "change time") || strings.Contains(t, "pick a different time") || strings.Contains(t, "different slot")
		}},
		{IntentConfirmBooking, func(t string) bool {
			return strings.Contains(t, "confirm booking") || strings.Contains(t, "confirm and pay") ||
				strings.Contains(t, "confirm & pay") || strings.Contains(t, "confirm my booking") ||
				strings.Contains(t, "confirm this booking")
		}},
	}

	for _, r := range rules {
		if r.match(t) {
			if r.intent == IntentServiceMention {
				return r.intent, serviceID
			}
			return r.intent, ""
		}
	}
	return IntentNone, ""
}

func isExplicitServices(t string) bool {
	switch t {
	case "show services", "list services", "see services", "services", "show all services":
		return true
	}
	return strings.Contains(t, "show services") || strings.Contains(t, "list services")
}

// fuzzyServiceID scores every catalog service against the utterance: 4 points
// when the full lowercased name appears as a substring, plus one per name
// token found. The best score wins if it reaches 2; ties keep the first
// service in catalog order. Deliberately coarse, not semantic.
func (cl *Classifier) fuzzyServiceID(t string) string {
	best := -1
	bestID := ""
	for _, svc := range cl.Catalog.Services() {
		name := strings.ToLower(svc.Name)
		score := 0
		if strings.Contains(t, name) {
			score += 4
		}
		for _, token := range strings.Fields(name) {
			if strings.Contains(t, token) {
				score++
			}
		}
		if score > best {
			best = score
			bestID = svc.ID
		}
	}
	if best >= 2 {
		return bestID
	}
	return ""
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
