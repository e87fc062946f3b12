package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturly/facturly-backend/internal/middleware"
	"github.com/facturly/facturly-backend/internal/utils"
)

const testSecret = "unit-test-secret"

func newAuthedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no user in context")
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func doAuthedRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthedRouter()

	token, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "facturly-backend")
	require.NoError(t, err)

	w := doAuthedRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newAuthedRouter()

	token, err := utils.GenerateJWT("user-42", testSecret, -time.Hour, "facturly-backend")
	require.NoError(t, err)

	w := doAuthedRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := newAuthedRouter()

	token, err := utils.GenerateJWT("user-42", "some-other-secret", time.Hour, "facturly-backend")
	require.NoError(t, err)

	w := doAuthedRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthedRouter()

	w := doAuthedRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newAuthedRouter()

	w := doAuthedRequest(r, "Token abc.def.ghi")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer")
}
