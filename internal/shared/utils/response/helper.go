package response

import (
	"github.com/gin-gonic/gin"

	"boxoffice/internal/shared/apperr"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
		RequestID:  c.GetString("request_id"),
	})
}

// RespondError writes an error envelope with the status mapped from err.
func RespondError(c *gin.Context, message string, err error) {
	RespondJSON(c, "error", apperr.HTTPStatus(err), message, nil, err.Error())
}
