package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"boxoffice/internal/shared/apperr"
)

func TestRespondJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	RespondJSON(c, "success", http.StatusOK, "ok", gin.H{"n": 1}, nil)

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", gjson.Get(body, "status").String())
	assert.Equal(t, int64(1), gjson.Get(body, "data.n").Int())
	assert.Equal(t, "req-1", gjson.Get(body, "request_id").String())
	assert.False(t, gjson.Get(body, "errors").Exists())
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[error]int{
		fmt.Errorf("%w: quantity", apperr.ErrInvalidInput): http.StatusBadRequest,
		fmt.Errorf("%w: event 9", apperr.ErrNotFound):      http.StatusNotFound,
		fmt.Errorf("%w: kafka", apperr.ErrUpstream):        http.StatusBadGateway,
		fmt.Errorf("boom"): http.StatusInternalServerError,
	}
	for err, want := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		RespondError(c, "failed", err)

		assert.Equal(t, want, w.Code, err.Error())
		assert.Equal(t, "error", gjson.Get(w.Body.String(), "status").String())
		assert.Equal(t, err.Error(), gjson.Get(w.Body.String(), "errors").String())
		assert.False(t, gjson.Get(w.Body.String(), "request_id").Exists())
	}
}
