package tickets

import (
	"fmt"

	"boxoffice/internal/shared/apperr"
)

type Repository interface {
	FindAll() []Ticket
	FindByID(id string) (Ticket, error)
}

type repository struct {
	tickets []Ticket
}

// NewRepository serves the fixed list of purchased tickets.
func NewRepository() Repository {
	return &repository{tickets: purchased()}
}

func (r *repository) FindAll() []Ticket {
	return append([]Ticket(nil), r.tickets...)
}

func (r *repository) FindByID(id string) (Ticket, error) {
	for _, t := range r.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return Ticket{}, fmt.Errorf("%w: ticket %q", apperr.ErrNotFound, id)
}

func purchased() []Ticket {
	return []Ticket{
		{
			ID:         "1",
			EventName:  "Taylor Swift | The Eras Tour",
			Date:       "June 15, 2024",
			Time:       "7:00 PM",
			Venue:      "SoFi Stadium",
			Location:   "Los Angeles, CA",
			Section:    "Lower Bowl",
			Seat:       "A12",
			TicketCode: "TS-ERAS-2024-12345",
			ImageURL:   "/placeholder.svg?height=200&width=300",
		},
		{
			ID:         "2",
			EventName:  "Taylor Swift | The Eras Tour",
			Date:       "June 15, 2024",
			Time:       "7:00 PM",
			Venue:      "SoFi Stadium",
			Location:   "Los Angeles, CA",
			Section:    "Lower Bowl",
			Seat:       "A13",
			TicketCode: "TS-ERAS-2024-12346",
			ImageURL:   "/placeholder.svg?height=200&width=300",
		},
		{
			ID:         "3",
			EventName:  "NBA Finals 2024",
			Date:       "June 20, 2024",
			Time:       "6:30 PM",
			Venue:      "Madison Square Garden",
			Location:   "New York, NY",
			Section:    "Section 101",
			Seat:       "Row 7, Seat 5",
			TicketCode: "NBA-FINALS-2024-78901",
			ImageURL:   "/placeholder.svg?height=200&width=300",
		},
	}
}
