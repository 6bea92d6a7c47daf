package events

type EventResponse struct {
	Event
	PriceLabel string `json:"price_label"`
}

type EventDetailResponse struct {
	EventResponse
	Sections []Section `json:"sections"`
}

type EventListResponse struct {
	Tab    Tab             `json:"tab"`
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

func toEventResponse(e Event) EventResponse {
	return EventResponse{Event: e, PriceLabel: e.PriceLabel()}
}

func toEventResponses(events []Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}
