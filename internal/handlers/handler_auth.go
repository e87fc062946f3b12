package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/facturly/facturly-backend/internal/apperrors"
	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	coresvc "github.com/facturly/facturly-backend/internal/core/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/middleware"
	"github.com/facturly/facturly-backend/internal/platform/config"
	"github.com/facturly/facturly-backend/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: us,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
	}
}

func (h *AuthHandler) issueToken(userID string) (string, error) {
	return utils.GenerateJWT(userID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
}

// Register creates a new account and returns a signed token for it.
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An account with this email already exists"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	token, err := h.issueToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{ID: user.UserID, Email: user.Email, Token: token})
}

// Login authenticates a user and returns a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, coresvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	token, err := h.issueToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{ID: user.UserID, Email: user.Email, Token: token})
}
