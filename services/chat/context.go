package chat

import (
	"fmt"
	"strings"

	"salesbot/catalog"
	"salesbot/models"
)

// ParseSessionContext rebuilds the ephemeral session state from the opaque,
// client-authored context bag. The cart can arrive in three additive shapes:
//
//	cart:     a collection of service ids, priced at base price
//	addOnIds: a flat collection of add-on ids
//	addOns:   a map of arbitrary keys (grouping by service) to add-on ids
//
// The context is untrusted: unknown ids and unrecognized shapes are ignored,
// never an error. Each distinct add-on id is priced at most once even when it
// appears in several groupings.
func ParseSessionContext(ctx map[string]any, cat *catalog.Catalog) models.SessionContext {
	var sc models.SessionContext
	if ctx == nil {
		return sc
	}

	if cart, ok := ctx["cart"].([]any); ok {
		for _, v := range cart {
			if svc, ok := cat.ServiceByID(stringify(v)); ok {
				sc.Subtotal += svc.BasePrice
			}
		}
	}

	seen := make(map[string]bool)
	priceAddOn := func(v any) {
		a, ok := cat.AddOnByID(stringify(v))
		if !ok || seen[a.ID] {
			return
		}
		seen[a.ID] = true
		sc.Subtotal += a.Price
	}

	if ids, ok := ctx["addOnIds"].([]any); ok {
		for _, v := range ids {
			priceAddOn(v)
		}
	}
	if groups, ok := ctx["addOns"].(map[string]any); ok {
		for _, group := range groups {
			if ids, ok := group.([]any); ok {
				for _, v := range ids {
					priceAddOn(v)
				}
			}
		}
	}

	sc.Date, sc.Time = parseSlot(ctx["selectedSlot"])
	return sc
}

// parseSlot accepts either a {date,time} object or a single "date time"
// string split on the first whitespace run.
func parseSlot(slot any) (date, t string) {
	switch s := slot.(type) {
	case nil:
		return "", ""
	case map[string]any:
		if d, ok := s["date"]; ok {
			date = stringify(d)
		}
		if v, ok := s["time"]; ok {
			t = stringify(v)
		}
		return date, t
	default:
		raw := stringify(s)
		parts := strings.Fields(raw)
		if len(parts) >= 2 {
			return parts[0], strings.Join(parts[1:], " ")
		}
		return raw, ""
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
