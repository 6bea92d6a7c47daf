package checkout

import (
	"encoding/json"
	"time"

	"boxoffice/internal/pricing"
)

const StatusSubmitted = "SUBMITTED"

// OrderSubmitted is handed to the order-submission topic. It never carries
// card data beyond the last four digits.
type OrderSubmitted struct {
	Reference     string            `json:"reference"`
	EventID       string            `json:"event_id"`
	EventTitle    string            `json:"event_title"`
	SectionID     string            `json:"section_id,omitempty"`
	SeatIDs       []string          `json:"seat_ids,omitempty"`
	Breakdown     pricing.Breakdown `json:"breakdown"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CardLast4     string            `json:"card_last4"`
	BillingCity   string            `json:"billing_city"`
	BillingState  string            `json:"billing_state"`
	BillingZip    string            `json:"billing_zip"`
	SubmittedAt   time.Time         `json:"submitted_at"`
}

func (o *OrderSubmitted) ToJSON() ([]byte, error) {
	return json.Marshal(o)
}

// GetPartitionKey keeps all messages of one order on the same partition.
func (o *OrderSubmitted) GetPartitionKey() string {
	return o.Reference
}

type Receipt struct {
	Reference   string            `json:"reference"`
	Status      string            `json:"status"`
	EventID     string            `json:"event_id"`
	EventTitle  string            `json:"event_title"`
	SectionID   string            `json:"section_id,omitempty"`
	SeatIDs     []string          `json:"seat_ids,omitempty"`
	Breakdown   pricing.Breakdown `json:"breakdown"`
	MaskedCard  string            `json:"masked_card"`
	SubmittedAt time.Time         `json:"submitted_at"`
}
