package events

import "github.com/gin-gonic/gin"

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - the catalog is browsable without an account
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.GetAllEvents)                  // GET /api/v1/events?tab=concerts
		publicEvents.GET("/featured", controller.GetFeaturedEvent)     // GET /api/v1/events/featured
		publicEvents.GET("/:id", controller.GetEvent)                  // GET /api/v1/events/:id
		publicEvents.GET("/:id/sections", controller.GetEventSections) // GET /api/v1/events/:id/sections
		publicEvents.GET("/:id/quote", controller.GetEventQuote)       // GET /api/v1/events/:id/quote?quantity=2
	}
}
