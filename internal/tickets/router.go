package tickets

import "github.com/gin-gonic/gin"

func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	tickets := rg.Group("/tickets")
	{
		tickets.GET("", controller.GetTickets)    // GET /api/v1/tickets
		tickets.GET("/:id", controller.GetTicket) // GET /api/v1/tickets/:id
	}
}
