package billing

import (
	"testing"

	"salesbot/catalog"
	"salesbot/models"

	"github.com/stretchr/testify/assert"
)

func newService() *DefaultBillingService {
	return &DefaultBillingService{Catalog: catalog.Default()}
}

func TestQuoteWeekdayMorningDiscount(t *testing.T) {
	svc := newService()

	resp := svc.Quote(models.QuoteRequest{
		ServiceIDs:     []string{"CAR-WASH"},
		AddOnIDs:       []string{"AO-WAX"},
		WeekdayMorning: true,
	})

	assert.Equal(t, 2200, resp.Subtotal)
	assert.Equal(t, 220, resp.Discount)
	assert.Equal(t, 1980, resp.Total)
	assert.NotEmpty(t, resp.RuleNote)
}

func TestQuoteNoDiscountWithoutWeekdayMorning(t *testing.T) {
	svc := newService()

	resp := svc.Quote(models.QuoteRequest{
		ServiceIDs: []string{"OIL-CHG"},
		AddOnIDs:   []string{"AO-SYN", "AO-FLTR"},
	})

	assert.Equal(t, 3200+1200+800, resp.Subtotal)
	assert.Equal(t, 0, resp.Discount)
	assert.Equal(t, resp.Subtotal, resp.Total)
	assert.Empty(t, resp.RuleNote)
}

func TestQuoteIgnoresDetachedAddOns(t *testing.T) {
	svc := newService()

	// AO-CER belongs to DETAIL, which is not selected; it must contribute 0.
	resp := svc.Quote(models.QuoteRequest{
		ServiceIDs: []string{"CAR-WASH"},
		AddOnIDs:   []string{"AO-CER"},
	})

	assert.Equal(t, 1500, resp.Subtotal)
}

func TestQuoteIgnoresUnknownIDs(t *testing.T) {
	svc := newService()

	resp := svc.Quote(models.QuoteRequest{
		ServiceIDs: []string{"CAR-WASH", "JET-SKI"},
		AddOnIDs:   []string{"AO-WAX", "AO-NOPE"},
	})

	assert.Equal(t, 2200, resp.Subtotal)
}

func TestQuoteIsIdempotent(t *testing.T) {
	svc := newService()
	req := models.QuoteRequest{
		ServiceIDs:     []string{"DETAIL"},
		AddOnIDs:       []string{"AO-CLAY", "AO-CER"},
		WeekdayMorning: true,
	}

	first := svc.Quote(req)
	second := svc.Quote(req)
	assert.Equal(t, first, second)
}

func TestQuoteEmptyRequest(t *testing.T) {
	svc := newService()

	resp := svc.Quote(models.QuoteRequest{WeekdayMorning: true})
	assert.Equal(t, 0, resp.Subtotal)
	assert.Equal(t, 0, resp.Discount)
	assert.Equal(t, 0, resp.Total)
}
