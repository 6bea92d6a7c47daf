package checkout

import "github.com/gin-gonic/gin"

func SetupCheckoutRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/checkout", controller.SubmitCheckout) // POST /api/v1/checkout
}
