package billing

import (
	"math"

	"salesbot/catalog"
	"salesbot/models"
)

const weekdayMorningNote = "Weekday AM promo -10%"

// DefaultBillingService implements BillingService over an immutable catalog.
type DefaultBillingService struct {
	Catalog *catalog.Catalog
}

// Quote prices the requested services and add-ons. An add-on contributes to
// the subtotal only when it is both requested by id and attached to one of the
// selected services; unknown ids are ignored rather than rejected. CarSize is
// accepted for future sizing rules and currently does not affect the price.
func (s *DefaultBillingService) Quote(req models.QuoteRequest) models.QuoteResponse {
	subtotal := 0

	for _, id := range req.ServiceIDs {
		if svc, ok := s.Catalog.ServiceByID(id); ok {
			subtotal += svc.BasePrice
		}
	}

	requested := make(map[string]bool, len(req.AddOnIDs))
	for _, id := range req.AddOnIDs {
		requested[id] = true
	}
	if len(requested) > 0 {
		for _, id := range req.ServiceIDs {
			svc, ok := s.Catalog.ServiceByID(id)
			if !ok {
				continue
			}
			for _, a := range svc.AddOns {
				if requested[a.ID] {
					subtotal += a.Price
				}
			}
		}
	}

	discount := 0
	note := ""
	if req.WeekdayMorning {
		discount = int(math.Round(float64(subtotal) * 0.10))
		note = weekdayMorningNote
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	return models.QuoteResponse{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		RuleNote: note,
	}
}
