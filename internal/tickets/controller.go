package tickets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boxoffice/internal/shared/utils/response"
)

type Controller struct {
	repo Repository
}

func NewController(repo Repository) *Controller {
	return &Controller{repo: repo}
}

func (c *Controller) GetTickets(ctx *gin.Context) {
	tickets := c.repo.FindAll()
	response.RespondJSON(ctx, "success", http.StatusOK, "Tickets retrieved successfully", gin.H{
		"tickets": tickets,
		"total":   len(tickets),
	}, nil)
}

func (c *Controller) GetTicket(ctx *gin.Context) {
	ticket, err := c.repo.FindByID(ctx.Param("id"))
	if err != nil {
		response.RespondError(ctx, "Ticket not found", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket retrieved successfully", ticket, nil)
}
