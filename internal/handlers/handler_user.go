package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/middleware"
	"github.com/facturly/facturly-backend/internal/platform/config"
)

// maxLogoSizeBytes caps logo uploads at 2MB.
const maxLogoSizeBytes = 2 << 20

// userHandler handles HTTP requests for the account profile.
type userHandler struct {
	userService portssvc.UserSvcFacade
	uploadsDir  string
}

func newUserHandler(us portssvc.UserSvcFacade, cfg *config.Config) *userHandler {
	return &userHandler{userService: us, uploadsDir: cfg.UploadsDir}
}

// registerUserRoutes registers the profile routes under /users/me.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, cfg *config.Config) {
	h := newUserHandler(userService, cfg)

	me := rg.Group("/users/me")
	{
		me.GET("", h.getProfile)
		me.PUT("", h.updateProfile)
		me.POST("/upgrade", h.upgradeToPremium)
		me.POST("/logo", h.uploadLogo)
	}
}

func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) updateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) upgradeToPremium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.UpgradeToPremium(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to upgrade user", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// uploadLogo stores the uploaded image under the uploads directory and
// records its serving path on the profile.
func (h *userHandler) uploadLogo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Logo file is required"})
		return
	}
	if file.Size > maxLogoSizeBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Logo must be smaller than 2MB"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Logo must be a PNG, JPEG or WebP image"})
		return
	}

	storedName := uuid.NewString() + ext
	dst := filepath.Join(h.uploadsDir, storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		logger.Error("Failed to store logo upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store logo"})
		return
	}

	logoURL := "/uploads/" + storedName
	if err := h.userService.UpdateLogoURL(c.Request.Context(), userID, logoURL); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logoUrl": logoURL})
}
