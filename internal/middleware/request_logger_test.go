package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"Cofrinho/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggerSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, buf.String(), generated)
	assert.Contains(t, buf.String(), `"status":418`)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
