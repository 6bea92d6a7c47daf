package seats

import "github.com/gin-gonic/gin"

func SetupSelectionRoutes(rg *gin.RouterGroup, controller *Controller) {
	selections := rg.Group("/selections")
	{
		selections.POST("", controller.StartSession)     // POST /api/v1/selections
		selections.GET("/:id", controller.GetSession)    // GET /api/v1/selections/:id
		selections.DELETE("/:id", controller.EndSession) // DELETE /api/v1/selections/:id

		// Selection changes
		selections.PUT("/:id/section", controller.SelectSection)            // PUT /api/v1/selections/:id/section
		selections.POST("/:id/seats/:seatId/toggle", controller.ToggleSeat) // POST /api/v1/selections/:id/seats/:seatId/toggle

		// Read models
		selections.GET("/:id/quote", controller.GetQuote)     // GET /api/v1/selections/:id/quote
		selections.GET("/:id/seatmap", controller.GetSeatMap) // GET /api/v1/selections/:id/seatmap?section=floor
	}
}
