package pricing

import "boxoffice/internal/money"

// DefaultServiceFeeRate is the storefront service fee, 15% of the subtotal.
const DefaultServiceFeeRate money.Rate = 1500

// Breakdown is the itemized price of an order.
type Breakdown struct {
	TicketPrice    money.Amount `json:"ticket_price"`
	Quantity       int          `json:"quantity"`
	Subtotal       money.Amount `json:"subtotal"`
	ServiceFeeRate money.Rate   `json:"service_fee_rate"`
	ServiceFee     money.Amount `json:"service_fee"`
	Total          money.Amount `json:"total"`
}
