package billing

import "salesbot/models"

// BillingService computes price quotes over the catalog. Quoting is a pure
// function of its input: it reads no conversational state and is exposed both
// to the turn resolver and directly as the quote endpoint.
type BillingService interface {
	Quote(req models.QuoteRequest) models.QuoteResponse
}
