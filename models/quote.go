package models

// QuoteRequest is the input for a standalone price quote.
type QuoteRequest struct {
	ServiceIDs     []string `json:"serviceIds"`
	AddOnIDs       []string `json:"addOnIds"`
	CarSize        string   `json:"carSize"`
	WeekdayMorning bool     `json:"weekdayMorning"`
}

// QuoteResponse carries the computed price breakdown.
type QuoteResponse struct {
	Subtotal int    `json:"subtotal"`
	Discount int    `json:"discount"`
	Total    int    `json:"total"`
	RuleNote string `json:"ruleNote,omitempty"`
}
