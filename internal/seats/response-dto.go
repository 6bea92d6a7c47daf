package seats

import (
	"time"

	"boxoffice/internal/events"
)

type SessionResponse struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	Section       string    `json:"section,omitempty"`
	SelectedSeats []string  `json:"selected_seats"`
	SelectedCount int       `json:"selected_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SeatMap struct {
	EventID string         `json:"event_id"`
	Section events.Section `json:"section"`
	Columns int            `json:"columns"`
	Seats   []SeatCell     `json:"seats"`
}

type SeatCell struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Selected bool   `json:"selected"`
}

func toSessionResponse(s Session) SessionResponse {
	section, _ := s.Selection.ActiveSection()
	return SessionResponse{
		ID:            s.ID,
		EventID:       s.EventID,
		Section:       section,
		SelectedSeats: s.Selection.Seats(),
		SelectedCount: s.Selection.SelectedCount(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
