package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boxoffice/internal/shared/utils/response"
)

type Controller interface {
	ComputeBreakdown(c *gin.Context)
	GetFeeRate(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ComputeBreakdown(c *gin.Context) {
	var req BreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	feeRate := ctrl.service.FeeRate()
	if req.FeeRate != nil {
		feeRate = *req.FeeRate
	}

	breakdown, err := ctrl.service.QuoteWithRate(req.TicketPrice, req.Quantity, feeRate)
	if err != nil {
		response.RespondError(c, "Failed to compute price breakdown", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Price breakdown computed successfully", breakdown, nil)
}

func (ctrl *controller) GetFeeRate(c *gin.Context) {
	response.RespondJSON(c, "success", http.StatusOK, "Service fee rate retrieved successfully", gin.H{
		"service_fee_rate": ctrl.service.FeeRate(),
	}, nil)
}
