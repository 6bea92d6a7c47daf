package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boxoffice/internal/shared/utils/response"
)

type Controller interface {
	SubmitCheckout(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) SubmitCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid checkout form", nil, fieldErrors(err))
		return
	}

	receipt, err := ctrl.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, "Checkout failed", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Order submitted successfully", receipt, nil)
}
