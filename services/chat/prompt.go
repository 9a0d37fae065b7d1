package chat

import (
	"fmt"
	"strings"

	"salesbot/catalog"
)

// BuildSystemInstruction renders the grounding prompt: the behavioral rules
// plus the full catalog, one service per line. The model is told to only ever
// reference catalog ids; the resolver re-validates that promise regardless.
func BuildSystemInstruction(cat *catalog.Catalog) string {
	var sb strings.Builder
	sb.WriteString(`You are the sales assistant for our car-care site.
RULES:
- Only suggest services and add-ons that exist in the catalog below.
- When recommending, return valid service IDs in actions.recommend.
- When asking for add-ons, return actions.askAddOns with the selected serviceId;
  the server will fill the options list from the catalog.
- Keep replies brief and friendly; offer quickReplies like "Add add-ons", "Continue", "Show services".
CATALOG (id | name | price | addOnIds):
`)
	for _, svc := range cat.Services() {
		ids := make([]string, 0, len(svc.AddOns))
		for _, a := range svc.AddOns {
			ids = append(ids, a.ID)
		}
		fmt.Fprintf(&sb, "%s | %s | %d | %s\n", svc.ID, svc.Name, svc.BasePrice, strings.Join(ids, ","))
	}
	return sb.String()
}

// ResponseSchema is the JSON schema constraint sent with every generation
// request. Kept to the subset the Gemini REST API supports (no
// additionalProperties).
func ResponseSchema() map[string]any {
	quickItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{"type": "string"},
			"value": map[string]any{"type": "string"},
		},
		"required": []string{"label", "value"},
	}

	recommendItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string"},
			"score": map[string]any{"type": "number"},
		},
		"required": []string{"id"},
	}

	askAddOns := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"serviceId": map[string]any{"type": "string"},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "string"},
						"name":  map[string]any{"type": "string"},
						"price": map[string]any{"type": "number"},
					},
					"required": []string{"id", "name", "price"},
				},
			},
		},
		"required": []string{"serviceId"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{"type": "string"},
			"quickReplies": map[string]any{
				"type":  "array",
				"items": quickItem,
			},
			"actions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"recommend": map[string]any{"type": "array", "items": recommendItem},
					"askAddOns": askAddOns,
				},
			},
		},
		"required": []string{"reply"},
	}
}
