package events

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boxoffice/internal/shared/utils/response"
)

type Controller interface {
	GetAllEvents(c *gin.Context)
	GetFeaturedEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	GetEventSections(c *gin.Context)
	GetEventQuote(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAllEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	events, err := ctrl.service.ListByTab(query.Tab)
	if err != nil {
		response.RespondError(c, "Invalid browse tab", err)
		return
	}

	tab, _ := ParseTab(query.Tab)
	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully", EventListResponse{
		Tab:    tab,
		Events: toEventResponses(events),
		Total:  len(events),
	}, nil)
}

func (ctrl *controller) GetFeaturedEvent(c *gin.Context) {
	event, err := ctrl.service.Featured()
	if err != nil {
		response.RespondError(c, "Featured event not available", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Featured event retrieved successfully", toEventResponse(event), nil)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	event, err := ctrl.service.GetEvent(eventID)
	if err != nil {
		response.RespondError(c, "Event not found", err)
		return
	}

	sections, err := ctrl.service.Sections(eventID)
	if err != nil {
		response.RespondError(c, "Failed to get event sections", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event retrieved successfully", EventDetailResponse{
		EventResponse: toEventResponse(event),
		Sections:      sections,
	}, nil)
}

func (ctrl *controller) GetEventSections(c *gin.Context) {
	sections, err := ctrl.service.Sections(c.Param("id"))
	if err != nil {
		response.RespondError(c, "Event not found", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sections retrieved successfully", sections, nil)
}

func (ctrl *controller) GetEventQuote(c *gin.Context) {
	var query QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	breakdown, err := ctrl.service.Quote(c.Param("id"), query.Quantity)
	if err != nil {
		response.RespondError(c, "Failed to quote event tickets", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Quote computed successfully", breakdown, nil)
}
