package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/facturly/facturly-backend/internal/middleware"
)

func newLimitedRouter(limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	instance := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: limit})

	r := gin.New()
	r.Use(middleware.RateLimit(instance))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doRequest(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":54321"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_ThrottlesPerIP(t *testing.T) {
	r := newLimitedRouter(2)

	assert.Equal(t, http.StatusOK, doRequest(r, "203.0.113.7").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "203.0.113.7").Code)

	w := doRequest(r, "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimit_IsolatesClients(t *testing.T) {
	r := newLimitedRouter(1)

	assert.Equal(t, http.StatusOK, doRequest(r, "203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r, "203.0.113.7").Code)

	// A different address has its own counter.
	assert.Equal(t, http.StatusOK, doRequest(r, "198.51.100.9").Code)
}
