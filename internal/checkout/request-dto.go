package checkout

// CheckoutRequest is the storefront checkout form. Section and seat ids are
// optional; without a section the event base price applies.
type CheckoutRequest struct {
	// Contact
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"required,email"`

	// Payment
	CardNumber string `json:"card_number" binding:"required,cardnumber"`
	ExpiryDate string `json:"expiry_date" binding:"required,expiry"`
	CVV        string `json:"cvv" binding:"required,number,min=3,max=4"`

	// Billing address
	BillingAddress string `json:"billing_address" binding:"required,max=200"`
	City           string `json:"city" binding:"required,max=100"`
	State          string `json:"state" binding:"required,max=100"`
	ZipCode        string `json:"zip_code" binding:"required,zipcode"`

	// Order
	EventID   string   `json:"event_id" binding:"required"`
	SectionID string   `json:"section_id"`
	SeatIDs   []string `json:"seat_ids" binding:"omitempty,dive,required"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
}
