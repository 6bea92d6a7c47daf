package seats

type StartSessionRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

type SelectSectionRequest struct {
	SectionID string `json:"section_id" binding:"required"`
}

type SeatMapQuery struct {
	Section string `form:"section"`
}
