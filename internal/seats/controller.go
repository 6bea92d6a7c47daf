package seats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boxoffice/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) StartSession(ctx *gin.Context) {
	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, err := c.service.StartSession(ctx.Request.Context(), req.EventID)
	if err != nil {
		response.RespondError(ctx, "Failed to start selection", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Selection started successfully", toSessionResponse(session), nil)
}

func (c *Controller) GetSession(ctx *gin.Context) {
	session, err := c.service.GetSession(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, "Failed to get selection", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection retrieved successfully", toSessionResponse(session), nil)
}

func (c *Controller) EndSession(ctx *gin.Context) {
	if err := c.service.EndSession(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondError(ctx, "Failed to end selection", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection ended successfully", nil, nil)
}

func (c *Controller) SelectSection(ctx *gin.Context) {
	var req SelectSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	session, err := c.service.SelectSection(ctx.Request.Context(), ctx.Param("id"), req.SectionID)
	if err != nil {
		response.RespondError(ctx, "Failed to select section", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Section selected successfully", toSessionResponse(session), nil)
}

func (c *Controller) ToggleSeat(ctx *gin.Context) {
	session, err := c.service.ToggleSeat(ctx.Request.Context(), ctx.Param("id"), ctx.Param("seatId"))
	if err != nil {
		response.RespondError(ctx, "Failed to toggle seat", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat toggled successfully", toSessionResponse(session), nil)
}

func (c *Controller) GetQuote(ctx *gin.Context) {
	breakdown, err := c.service.Quote(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, "Failed to quote selection", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed successfully", breakdown, nil)
}

func (c *Controller) GetSeatMap(ctx *gin.Context) {
	var query SeatMapQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	seatMap, err := c.service.SeatMap(ctx.Request.Context(), ctx.Param("id"), query.Section)
	if err != nil {
		response.RespondError(ctx, "Failed to get seat map", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}
