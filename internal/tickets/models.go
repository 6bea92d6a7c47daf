package tickets

// Ticket is a purchased ticket shown on the "My Tickets" page.
type Ticket struct {
	ID         string `json:"id"`
	EventName  string `json:"event_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Venue      string `json:"venue"`
	Location   string `json:"location"`
	Section    string `json:"section"`
	Seat       string `json:"seat"`
	TicketCode string `json:"ticket_code"`
	ImageURL   string `json:"image_url"`
}
