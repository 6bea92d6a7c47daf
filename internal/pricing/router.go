package pricing

import "github.com/gin-gonic/gin"

func SetupPricingRoutes(router *gin.RouterGroup, controller Controller) {
	pricing := router.Group("/pricing")
	{
		pricing.POST("/breakdown", controller.ComputeBreakdown) // POST /api/v1/pricing/breakdown
		pricing.GET("/fee-rate", controller.GetFeeRate)         // GET /api/v1/pricing/fee-rate
	}
}
