package events

import (
	"strconv"

	"boxoffice/internal/money"
)

// DefaultMaxQuantity caps the tickets per order when an event sets no limit.
const DefaultMaxQuantity = 8

type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Location    string       `json:"location"`
	Venue       string       `json:"venue"`
	Address     string       `json:"address,omitempty"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"image_url"`
	BasePrice   money.Amount `json:"base_price"`
	Category    Category     `json:"category,omitempty"`
	Featured    bool         `json:"featured"`
	Dates       []string     `json:"dates,omitempty"`
	Times       []string     `json:"times,omitempty"`
	MaxQuantity int          `json:"max_quantity"`
}

// PriceLabel renders the listing price, e.g. "From $99".
func (e Event) PriceLabel() string {
	if e.BasePrice.IsWhole() {
		return "From $" + strconv.FormatInt(e.BasePrice.Cents()/100, 10)
	}
	return "From $" + e.BasePrice.String()
}

// Section is a seating tier of an event.
type Section struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Price     money.Amount `json:"price"`
	SeatCount int          `json:"seat_count"`
}

func (e Event) clone() Event {
	e.Dates = append([]string(nil), e.Dates...)
	e.Times = append([]string(nil), e.Times...)
	return e
}
