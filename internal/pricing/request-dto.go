package pricing

import "boxoffice/internal/money"

// BreakdownRequest accepts prices as strings ("99.00") or JSON numbers.
type BreakdownRequest struct {
	TicketPrice money.Amount `json:"ticket_price"`
	Quantity    int          `json:"quantity"`
	FeeRate     *money.Rate  `json:"fee_rate,omitempty"` // defaults to the configured rate
}
