package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"boxoffice/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(l))
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	return engine
}

func TestRequestID_Generated(t *testing.T) {
	engine := newEngine(logger.NewWithHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, gjson.Get(w.Body.String(), "request_id").String())
}

func TestRequestID_Propagated(t *testing.T) {
	engine := newEngine(logger.NewWithHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	engine := newEngine(logger.NewWithHandler(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-456")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Equal(t, "HTTP Request", gjson.Get(line, "msg").String())
	assert.Equal(t, "/ping", gjson.Get(line, "path").String())
	assert.Equal(t, "x=1", gjson.Get(line, "query").String())
	assert.Equal(t, int64(200), gjson.Get(line, "status").Int())
	assert.Equal(t, "req-456", gjson.Get(line, "request_id").String())
}
